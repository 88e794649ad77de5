package models

// User is a record in the flat-file user store. IDs are small integers
// assigned sequentially at registration.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
