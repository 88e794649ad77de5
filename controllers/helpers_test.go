package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/jolteer/pc-store/routes"
	"github.com/jolteer/pc-store/store"
)

// newTestRouter wires the real route table over the in-memory catalog and a
// temp-dir user store, with no Redis cache.
func newTestRouter(t *testing.T) (*mux.Router, *store.MemoryCatalog) {
	t.Helper()
	users := store.NewUserStore(filepath.Join(t.TempDir(), "users.json"))
	catalog := store.NewMemoryCatalog()
	router := mux.NewRouter()
	routes.Routes(router, users, catalog, nil)
	return router, catalog
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func registerAndLogin(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	creds := map[string]string{"email": email, "password": password}
	rr := doJSON(t, router, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}
