package models

import "strings"

// DashboardStats is the read-side composition the overview page renders.
type DashboardStats struct {
	TotalStudents int `json:"totalStudents"`
	PresentToday  int `json:"presentToday"`
	AbsentToday   int `json:"absentToday"`
}

// PresentOn counts records whose Date carries date (YYYY-MM-DD) as a
// prefix. Duplicate events for one name both count; presence is by
// recorded name, not roster membership, so absentToday can under-count
// true absentees when unmatched names land in the ledger.
func PresentOn(records []AttendanceRecord, date string) int {
	n := 0
	for _, r := range records {
		if strings.HasPrefix(r.Date, date) {
			n++
		}
	}
	return n
}

// ComputeStats derives the dashboard counts. absentToday is clamped at
// zero since present events are not validated against the roster.
func ComputeStats(totalStudents, presentToday int) DashboardStats {
	absent := totalStudents - presentToday
	if absent < 0 {
		absent = 0
	}
	return DashboardStats{
		TotalStudents: totalStudents,
		PresentToday:  presentToday,
		AbsentToday:   absent,
	}
}
