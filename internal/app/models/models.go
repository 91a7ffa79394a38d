package models

// Role defines the user role stored in the users table
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// DefaultPassword is assigned to users registered without a password.
const DefaultPassword = "123"
