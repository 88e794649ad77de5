package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/jolteer/pc-store/models"
	"github.com/jolteer/pc-store/store"
	"github.com/jolteer/pc-store/utils"
)

const listCacheTTL = 10 * time.Minute

// CreateItem inserts a product into the named collection and echoes the
// stored document, server-assigned id included.
func CreateItem(catalog store.Catalog, rdb *redis.Client, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product models.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			log.Printf("Invalid request body for POST /api/%s: %v", collection, err)
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := product.Validate(); err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		inserted, err := catalog.Insert(r.Context(), collection, product)
		if err != nil {
			log.Printf("Insert into %s failed: %v", collection, err)
			utils.WriteError(w, http.StatusInternalServerError, "Create failed")
			return
		}

		go invalidateListCache(rdb, collection)

		utils.WriteJSON(w, http.StatusCreated, inserted)
	}
}

// ListItems returns every document in the collection, unpaged and unsorted;
// all paging and filtering happens client-side. Responses are served from the
// Redis cache when one is configured.
func ListItems(catalog store.Catalog, rdb *redis.Client, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheKey := listCacheKey(collection)
		if rdb != nil {
			cached, err := rdb.Get(r.Context(), cacheKey).Result()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cached))
				return
			}
			if err != redis.Nil {
				log.Printf("Redis GET error for %s: %v", cacheKey, err)
			}
		}

		products, err := catalog.List(r.Context(), collection)
		if err != nil {
			log.Printf("Error fetching %s: %v", collection, err)
			utils.WriteError(w, http.StatusInternalServerError, "Fetch failed")
			return
		}

		body, err := json.Marshal(products)
		if err != nil {
			log.Printf("Error encoding %s: %v", collection, err)
			utils.WriteError(w, http.StatusInternalServerError, "Fetch failed")
			return
		}

		if rdb != nil {
			if err := rdb.Set(r.Context(), cacheKey, body, listCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache %s: %v", cacheKey, err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

func GetItem(catalog store.Catalog, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		product, err := catalog.Get(r.Context(), collection, id)
		if err == store.ErrNotFound {
			utils.WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		if err != nil {
			log.Printf("Error fetching %s/%s: %v", collection, id, err)
			utils.WriteError(w, http.StatusInternalServerError, "Fetch failed")
			return
		}

		utils.WriteJSON(w, http.StatusOK, product)
	}
}

// UpdateItem merges the fields present in the body into the stored document
// and acknowledges; it does not return the document.
func UpdateItem(catalog store.Catalog, rdb *redis.Client, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			log.Printf("Invalid update body for %s/%s: %v", collection, id, err)
			utils.WriteError(w, http.StatusBadRequest, "Invalid update data")
			return
		}

		if err := models.ValidateUpdate(fields); err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		err := catalog.Update(r.Context(), collection, id, fields)
		if err == store.ErrNotFound {
			utils.WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		if err != nil {
			log.Printf("Update failed for %s/%s: %v", collection, id, err)
			utils.WriteError(w, http.StatusInternalServerError, "Update failed")
			return
		}

		go invalidateListCache(rdb, collection)

		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Item updated"})
	}
}

// DeleteItem removes the document; a repeat delete of an already-gone id
// reports not-found.
func DeleteItem(catalog store.Catalog, rdb *redis.Client, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		err := catalog.Delete(r.Context(), collection, id)
		if err == store.ErrNotFound {
			utils.WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		if err != nil {
			log.Printf("Delete failed for %s/%s: %v", collection, id, err)
			utils.WriteError(w, http.StatusInternalServerError, "Delete failed")
			return
		}

		go invalidateListCache(rdb, collection)

		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
	}
}

func listCacheKey(collection string) string {
	return "catalog:" + collection
}

func invalidateListCache(rdb *redis.Client, collection string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(context.Background(), listCacheKey(collection)).Err(); err != nil {
		log.Printf("Failed to invalidate cache for %s: %v", collection, err)
	}
}
