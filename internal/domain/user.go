package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Identity - идентичность текущего вызывающего, извлеченная из сессии.
// Ядро полностью доверяет этим данным и не проверяет их повторно.
type Identity struct {
	UserID string
	Email  string
	Name   string
}
