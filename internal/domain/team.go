package domain

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

type PrivacyLevel string

const (
	PrivacyPrivate PrivacyLevel = "private"
	PrivacyPublic  PrivacyLevel = "public"
)

type Team struct {
	ID           string
	Name         string
	Description  string
	OwnerID      string
	PrivacyLevel PrivacyLevel
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TeamMember struct {
	ID        string
	TeamID    string
	UserID    string
	Role      Role
	JoinedAt  time.Time
	UserName  string
	UserEmail string
}

// TeamDetail - команда с участниками и счетчиками для детального чтения
type TeamDetail struct {
	Team               *Team
	Members            []*TeamMember
	PendingInvitations int
	CallerRole         Role
}

// TeamSummary - команда в списке команд пользователя вместе с его ролью
type TeamSummary struct {
	Team *Team
	Role Role
}

// HasRole проверяет, входит ли роль в список разрешенных
func (r Role) HasRole(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
