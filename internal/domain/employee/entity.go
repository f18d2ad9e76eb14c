package employee

import (
	"time"
)

type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	JobPosition string
	DateHired   time.Time
	// Avatar is the generated filename inside the avatar store, never empty
	// on a persisted record.
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName is the display name used by the listing.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Seniority is the absolute number of whole calendar days between the hire
// date and now.
func (e Employee) Seniority(now time.Time) int {
	hired := truncateToDate(e.DateHired)
	today := truncateToDate(now)
	days := int(today.Sub(hired).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
