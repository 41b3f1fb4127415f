package models

// ManualEntryPhoto marks records entered by hand rather than derived from
// an uploaded photo.
const ManualEntryPhoto = "manual-entry"

// ManualEntrySimilarity is the score assigned when no matcher produced
// one.
const ManualEntrySimilarity = 100

// AttendanceRecord is one presence event. face_id is generated by the
// service at creation time and never changes; records are immutable once
// written. The same name may appear any number of times per date.
//
// Field casing follows the attendance table's attribute names, which the
// dashboard consumes as-is.
type AttendanceRecord struct {
	FaceID     string  `json:"face_id" dynamodbav:"face_id"`
	Name       string  `json:"Name" dynamodbav:"Name"`
	Date       string  `json:"Date" dynamodbav:"Date"`
	Time       string  `json:"Time" dynamodbav:"Time"`
	Similarity float64 `json:"Similarity" dynamodbav:"Similarity"`
	PhotoName  string  `json:"PhotoName" dynamodbav:"PhotoName"`
}
