package domain

// User is a dashboard account. Passwords are stored as received; the
// service never hashes them.
type User struct {
	ID       int64
	Username string
	Password string
}
