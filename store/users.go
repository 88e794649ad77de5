package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"github.com/jolteer/pc-store/models"
)

// ErrEmailTaken reports a registration against an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// UserStore owns the flat user file. The whole list lives in memory and the
// file is rewritten on every change, so all access goes through the mutex.
type UserStore struct {
	path string

	mu    sync.Mutex
	users []models.User
}

// NewUserStore loads the user file at path. A missing or unreadable file
// starts the store empty rather than failing.
func NewUserStore(path string) *UserStore {
	s := &UserStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read user file %s, starting empty: %v", path, err)
		return s
	}
	if err := json.Unmarshal(data, &s.users); err != nil {
		log.Printf("Could not parse user file %s, starting empty: %v", path, err)
		s.users = nil
	}
	return s
}

// Create registers a new user and persists the whole list. Emails are unique
// by case-sensitive exact match; the new id is max(existing)+1, or 1.
func (s *UserStore) Create(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	id := 1
	for _, u := range s.users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}

	user := models.User{ID: id, Email: email, Password: password}
	s.users = append(s.users, user)
	if err := s.save(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return models.User{}, err
	}
	return user, nil
}

// Authenticate looks up a user by exact email and password match.
func (s *UserStore) Authenticate(email, password string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) FindByID(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Count reports the number of registered users.
func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// save rewrites the whole user file. The caller holds the mutex.
func (s *UserStore) save() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
