package recognize

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/smartattend/attendance-backend/internal/models"
)

// Similarity scores a simulated match can produce. A real matcher reports
// its own confidence in the same 0-100 band.
const (
	minSimilarity = 85.0
	maxSimilarity = 100.0
)

// Simulate stands in for the face-matching pipeline. Given the current
// roster and the key of an uploaded class photo, it produces the records
// a real matcher would write: one event per recognized student, stamped
// with the photo name, a confidence score, and a fresh face_id. Roughly
// one student in five goes unrecognized, mirroring an imperfect matcher.
func Simulate(roster []models.Student, photoName string, now time.Time) []models.AttendanceRecord {
	if len(roster) == 0 {
		return nil
	}

	date := now.Format("2006-01-02")
	clock := now.Format("15:04:05")

	records := make([]models.AttendanceRecord, 0, len(roster))
	for _, s := range roster {
		if rand.IntN(5) == 0 {
			continue
		}
		records = append(records, models.AttendanceRecord{
			FaceID:     uuid.NewString(),
			Name:       s.Name,
			Date:       date,
			Time:       clock,
			Similarity: minSimilarity + rand.Float64()*(maxSimilarity-minSimilarity),
			PhotoName:  photoName,
		})
	}
	return records
}
