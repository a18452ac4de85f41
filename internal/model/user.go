package model

// User is a registered account holder.  Identifiers are assigned
// sequentially by the user repository and are unique for the lifetime
// of the process.  The email address is unique across all users.
//
// Fields:
//  ID    – primary identifier, assigned on creation.
//  Name  – display name supplied at registration.
//  Email – contact address, enforced unique.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
