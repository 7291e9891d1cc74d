// Package accounts - User accounts with single-purpose collaborators
// The user value, its persistence, its mailing, and its reporting each
// live behind their own contract; the service composes them through
// constructor injection.
package accounts

// User represents a user account
type User struct {
	// Name is the user's display name
	Name string

	// Email is the user's contact address
	Email string
}
