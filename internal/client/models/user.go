package models

// Credential is the stored record for a username. Only the bcrypt hash is
// kept; the JSON key stays "password" for compatibility with existing files.
type Credential struct {
	PasswordHash string `json:"password"`
}
