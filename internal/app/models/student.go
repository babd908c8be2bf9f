package models

import "time"

// Student defines the student profile model based on the 'students'
// table. Profiles are independent of accounts; there is no foreign key
// between the two.
type Student struct {
	ID       int64     `json:"id" db:"id" example:"1"`
	Name     string    `json:"name" db:"name" example:"Ravi Kumar"`
	Subject  string    `json:"subject" db:"subject" example:"Physics"`
	School   string    `json:"school" db:"school" example:"City Public School"`
	DOB      time.Time `json:"dob" db:"dob" example:"2006-02-10T00:00:00Z"`
	MobileNo string    `json:"mobileNo" db:"mobile_no" example:"9876543210"`
	Gender   string    `json:"gender" db:"gender" example:"male"`
}
