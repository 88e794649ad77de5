package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jolteer/pc-store/middleware"
	"github.com/jolteer/pc-store/store"
	"github.com/jolteer/pc-store/utils"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user from an email/password pair. No token is issued;
// the caller logs in separately.
func Register(users *store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Printf("Error decoding register payload: %v", err)
			utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if creds.Email == "" || creds.Password == "" {
			utils.WriteError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		if _, err := users.Create(creds.Email, creds.Password); err != nil {
			if err == store.ErrEmailTaken {
				log.Printf("User email already exists: %s", creds.Email)
				utils.WriteError(w, http.StatusConflict, "User already exists")
				return
			}
			log.Printf("Error persisting user: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		utils.WriteJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
	}
}

// Login checks credentials and issues a one-hour session token.
func Login(users *store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			log.Printf("Error decoding login payload: %v", err)
			utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		user, ok := users.Authenticate(creds.Email, creds.Password)
		if !ok {
			log.Printf("Invalid credentials for %s", creds.Email)
			utils.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := utils.GenerateJWT(user.ID, user.Email)
		if err != nil {
			log.Printf("Error generating token: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// Signout is a stateless acknowledgment; the actual invalidation is the
// client discarding its copy of the token.
func Signout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Client should remove token"})
	}
}

// Profile returns the account matching the verified token's id.
func Profile(users *store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFrom(r.Context())
		if !ok {
			utils.WriteError(w, http.StatusForbidden, "Invalid or missing token")
			return
		}

		user, ok := users.FindByID(claims.UserID)
		if !ok {
			log.Printf("No user with id %d for profile lookup", claims.UserID)
			utils.WriteError(w, http.StatusNotFound, "User not found")
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"id": user.ID, "email": user.Email})
	}
}
