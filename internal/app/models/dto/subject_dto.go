package dto

// CreateSubjectRequest is the payload for creating a subject
type CreateSubjectRequest struct {
	Standard    int    `json:"standard" binding:"required" example:"10"`
	SubjectName string `json:"subjectname" binding:"required" example:"Mathematics"`
	Board       string `json:"board" binding:"required" example:"CBSE"`
}

// UpdateSubjectRequest is the payload for updating a subject
type UpdateSubjectRequest struct {
	Standard    int    `json:"standard" binding:"required" example:"10"`
	SubjectName string `json:"subjectname" binding:"required" example:"Mathematics"`
	Board       string `json:"board" binding:"required" example:"CBSE"`
}

// SubjectRef identifies a subject by its (subject, standard, board) triple,
// the way the client refers to subjects in registration payloads.
type SubjectRef struct {
	Standard int    `json:"standard" binding:"required" example:"10"`
	Subject  string `json:"subject" binding:"required" example:"Science"`
	Board    string `json:"board" binding:"required" example:"ICSE"`
}

// ColumnInfo describes one column of a table, as reported by the database
// diagnostics endpoint.
type ColumnInfo struct {
	ColumnName    string  `json:"columnName"`
	DataType      string  `json:"dataType"`
	IsNullable    string  `json:"isNullable"`
	ColumnDefault *string `json:"columnDefault"`
}

// DatabaseCheck is the response of the database diagnostics endpoint
type DatabaseCheck struct {
	TableStructure []ColumnInfo `json:"tableStructure"`
	SampleData     interface{}  `json:"sampleData"`
	TotalSubjects  int          `json:"totalSubjects"`
}
