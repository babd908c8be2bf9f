package models

import (
	"time"
)

// Role defines the account role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// Account defines the account model based on the 'accounts' table.
// LoginID is the authentication key and is unique within the table.
type Account struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FirstName string    `json:"firstName" db:"first_name" example:"Asha"`
	LastName  string    `json:"lastName" db:"last_name" example:"Verma"`
	LoginID   string    `json:"loginId" db:"login_id" example:"asha@gmail.com"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	DOB       time.Time `json:"dob" db:"dob" example:"2001-06-15T00:00:00Z"`
	Gender    string    `json:"gender" db:"gender" example:"female"`
	Role      Role      `json:"role" db:"role" example:"student"`
}
