package domain

// User represents an account identified by a unique username and email.
// The password column is stored as given; the json tag keeps it out of
// every response body.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
