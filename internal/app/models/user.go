package models

// User defines the user model based on the 'users' table.
// Email uniqueness is enforced by a pre-insert lookup in the services, not
// by a database constraint.
type User struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"Arun Kumar"`
	Email    string `json:"email" db:"email" example:"arun@example.com"`
	Password string `json:"-" db:"password"` // Stored in plaintext; excluded from JSON
	Role     Role   `json:"role" db:"role" example:"student"`
}
