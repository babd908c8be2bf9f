package models

// Marksheet defines the per-student subject marks based on the
// 'marksheets' table. Name is free text, not a reference into the
// students table. Score fields are pointers: a nil score means the mark
// has not been recorded, which excludes the row from the merit list.
type Marksheet struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	Name      string `json:"name" db:"name" example:"Ravi Kumar"`
	RollNo    string `json:"rollNo" db:"roll_no" example:"R-1042"`
	Physics   *int   `json:"physics" db:"physics" example:"88"`
	Chemistry *int   `json:"chemistry" db:"chemistry" example:"91"`
	Maths     *int   `json:"maths" db:"maths" example:"79"`
}

// Total returns the summed score and whether all three marks are present.
func (m *Marksheet) Total() (int, bool) {
	if m.Physics == nil || m.Chemistry == nil || m.Maths == nil {
		return 0, false
	}
	return *m.Physics + *m.Chemistry + *m.Maths, true
}
