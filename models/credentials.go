package models

// Credentials are read from the auth form at submit time and never stored.
// Username is only used by signup.
type Credentials struct {
	Username string
	Email    string
	Password string
}
