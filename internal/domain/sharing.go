package domain

import "time"

type ShareStatus string

const (
	ShareActive  ShareStatus = "active"
	ShareRemoved ShareStatus = "removed"
)

// TeamTemplate - запись о шаринге шаблона в команду.
// Никогда не удаляется физически: при отмене шаринга статус становится removed.
type TeamTemplate struct {
	ID         string
	TeamID     string
	TemplateID string
	SharedBy   string
	SharedAt   time.Time
	IsOfficial bool
	Status     ShareStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	TemplateTitle string
	SharedByName  string
	SharedByEmail string
}

type TemplateFavorite struct {
	ID         string
	UserID     string
	TemplateID string
	// TeamID пустой для личного избранного
	TeamID        string
	CreatedAt     time.Time
	TemplateTitle string
}

type TemplateFeedback struct {
	ID         string
	TemplateID string
	UserID     string
	// TeamID пустой для отзыва вне контекста команды
	TeamID    string
	Comment   string
	Rating    *int
	CreatedAt time.Time
	UserName  string
	UserEmail string
}

// TemplateStats - агрегированная вовлеченность по шаблону
type TemplateStats struct {
	TemplateID    string
	FavoriteCount int
	FeedbackCount int
	AverageRating *float64
}
