package domain

// User models an account holder. The password digest never leaves the process:
// it is excluded from JSON and only ever compared through bcrypt.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	PasswordDigest string `json:"-"`
	Timestamps
}
