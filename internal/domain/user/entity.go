package user

// User represents a user record. The ID is assigned by the store and is
// immutable once set; Email is unique across all users.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
