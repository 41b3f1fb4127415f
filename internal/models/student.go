package models

// Student is one roster entry. student_id is caller-assigned and is the
// table's primary key; writing the same id again replaces the record
// wholesale.
type Student struct {
	StudentID  string `json:"student_id" dynamodbav:"student_id"`
	Name       string `json:"name" dynamodbav:"name"`
	Email      string `json:"email" dynamodbav:"email"`
	Department string `json:"department" dynamodbav:"department"`
	PhotoName  string `json:"photo_name,omitempty" dynamodbav:"photo_name,omitempty"`
}
