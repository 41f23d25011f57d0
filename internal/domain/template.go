package domain

import "time"

type ChecklistTemplate struct {
	ID        string
	UserID    string
	Title     string
	StepCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChecklistStep struct {
	ID         string
	TemplateID string
	StepText   string
	OrderIndex int
	CreatedAt  time.Time
}
