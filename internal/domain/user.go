package domain

import "time"

// User is an account identified by a unique email. PasswordHash holds
// the bcrypt hash of the credential; it never appears in API output.
// CreatedEvents lists the IDs of every event this user created, in
// creation order.
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	CreatedEvents []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
