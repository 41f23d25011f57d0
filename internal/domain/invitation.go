package domain

import "time"

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationCancelled InvitationStatus = "cancelled"
	// InvitationExpired - производный статус, никогда не сохраняется:
	// в хранилище приглашение остается pending, пока не будет явной записи
	InvitationExpired InvitationStatus = "expired"
)

type TeamInvitation struct {
	ID           string
	TeamID       string
	InvitedEmail string
	InvitedBy    string
	Token        string
	Status       InvitationStatus
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	TeamName        string
	TeamDescription string
	InviterName     string
	InviterEmail    string
}

// EffectiveStatus вычисляет статус с учетом срока действия.
// Просроченное pending-приглашение функционально expired,
// хотя в хранилище поле статуса остается pending.
func (i *TeamInvitation) EffectiveStatus(now time.Time) InvitationStatus {
	if i.Status == InvitationPending && now.After(i.ExpiresAt) {
		return InvitationExpired
	}
	return i.Status
}
