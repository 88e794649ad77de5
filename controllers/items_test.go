package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jolteer/pc-store/models"
)

// Full lifecycle over one collection: create, list, get, partial update,
// delete, and the not-found afterstate.
func TestItemLifecycle(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com", "pw")

	rr := doJSON(t, router, http.MethodGet, "/api/CPUs", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())

	payload := map[string]interface{}{"name": "X", "price": 100, "image": "i", "description": "d"}
	rr = doJSON(t, router, http.MethodPost, "/api/CPUs", token, payload)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.False(t, created.ID.IsZero())
	require.Equal(t, "X", created.Name)
	require.Equal(t, 100.0, created.Price)

	rr = doJSON(t, router, http.MethodGet, "/api/CPUs", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, created, listed[0])

	id := created.ID.Hex()

	rr = doJSON(t, router, http.MethodPut, "/api/CPUs/"+id, token, map[string]interface{}{"price": 150})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/CPUs/"+id, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.Equal(t, "X", updated.Name)
	require.Equal(t, 150.0, updated.Price)
	require.Equal(t, "i", updated.Image)
	require.Equal(t, "d", updated.Description)

	rr = doJSON(t, router, http.MethodDelete, "/api/CPUs/"+id, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/CPUs/"+id, "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	// repeat delete reports not-found, not an error
	rr = doJSON(t, router, http.MethodDelete, "/api/CPUs/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)

	id := primitive.NewObjectID().Hex()
	payload := map[string]interface{}{"name": "X", "price": 1}

	rr := doJSON(t, router, http.MethodPost, "/api/GPUs", "", payload)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, router, http.MethodPut, "/api/GPUs/"+id, "", payload)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/GPUs/"+id, "", nil)
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateValidation(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com", "pw")

	rr := doJSON(t, router, http.MethodPost, "/api/RAM", token, map[string]interface{}{"price": 10})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/RAM", token, map[string]interface{}{"name": "R", "price": -1})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateValidation(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com", "pw")

	id := primitive.NewObjectID().Hex()

	rr := doJSON(t, router, http.MethodPut, "/api/Storage/"+id, token, map[string]interface{}{"color": "red"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPut, "/api/Storage/"+id, token, map[string]interface{}{"price": -5})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPut, "/api/Storage/"+id, token, map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// well-formed update against a missing document
	rr = doJSON(t, router, http.MethodPut, "/api/Storage/"+id, token, map[string]interface{}{"price": 5})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMalformedIDIsAGenericFailure(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com", "pw")

	rr := doJSON(t, router, http.MethodGet, "/api/CPUs/not-a-hex-id", "", nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/api/CPUs/not-a-hex-id", token, nil)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCollectionsAreIndependent(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com", "pw")

	rr := doJSON(t, router, http.MethodPost, "/api/CPUs", token, map[string]interface{}{"name": "C", "price": 1})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(t, router, http.MethodGet, "/api/GPUs/"+created.ID.Hex(), "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/GPUs", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `[]`, rr.Body.String())
}

func TestUnknownCollectionIsNotRouted(t *testing.T) {
	t.Setenv("JWT_KEY", "test-secret")
	router, _ := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/Motherboards", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
