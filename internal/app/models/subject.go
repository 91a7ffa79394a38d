package models

// Subject defines the subject model based on the 'subjects' table.
// Lookups resolve a subject by the (subjectname, standard, board) triple,
// not by the numeric id.
type Subject struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Standard    int    `json:"standard" db:"standard" example:"10"`
	SubjectName string `json:"subjectname" db:"subject_name" example:"Mathematics"`
	Board       string `json:"board" db:"board" example:"CBSE"`
}
