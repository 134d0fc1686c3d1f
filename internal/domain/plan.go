package domain

import (
	"math"
	"time"
)

// StudyPlan is a user's exam preparation window. It is read-only here.
type StudyPlan struct {
	ID        string
	UserID    string
	ExamDate  time.Time
	StartDate time.Time
	EndDate   time.Time
}

// DaysUntilExam returns the number of whole days, rounded up, from now to the exam.
// A past exam yields 0.
func (p *StudyPlan) DaysUntilExam(now time.Time) int {
	d := p.ExamDate.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

// Topic is a unit of curriculum a task can target.
type Topic struct {
	ID   string
	Name string
}
