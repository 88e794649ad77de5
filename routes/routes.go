package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/jolteer/pc-store/controllers"
	"github.com/jolteer/pc-store/middleware"
	"github.com/jolteer/pc-store/models"
	"github.com/jolteer/pc-store/store"
)

// Routes wires the auth endpoints plus one CRUD handler set per product
// collection, registered in a fixed loop over the four collection names.
// List and get-by-id are public; every mutating route and the profile lookup
// sit behind the token guard.
func Routes(router *mux.Router, users *store.UserStore, catalog store.Catalog, rdb *redis.Client) {
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/public.html", http.StatusFound)
	}).Methods("GET")

	router.HandleFunc("/api/auth/register", controllers.Register(users)).Methods("POST")
	router.HandleFunc("/api/auth/login", controllers.Login(users)).Methods("POST")
	router.HandleFunc("/api/auth/signout", controllers.Signout()).Methods("GET")
	router.Handle("/api/auth/profile", middleware.RequireAuth(controllers.Profile(users))).Methods("GET")

	for _, name := range models.Collections {
		base := "/api/" + name
		router.Handle(base, middleware.RequireAuth(controllers.CreateItem(catalog, rdb, name))).Methods("POST")
		router.HandleFunc(base, controllers.ListItems(catalog, rdb, name)).Methods("GET")
		router.HandleFunc(base+"/{id}", controllers.GetItem(catalog, name)).Methods("GET")
		router.Handle(base+"/{id}", middleware.RequireAuth(controllers.UpdateItem(catalog, rdb, name))).Methods("PUT")
		router.Handle(base+"/{id}", middleware.RequireAuth(controllers.DeleteItem(catalog, rdb, name))).Methods("DELETE")
	}
}
