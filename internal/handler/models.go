package handler

type ErrorResponse struct {
	Error string `json:"error"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type TemplateRequest struct {
	Title string   `json:"title" validate:"required"`
	Steps []string `json:"steps" validate:"required,min=1"`
}

type StepResponse struct {
	ID         string `json:"id"`
	StepText   string `json:"step_text"`
	OrderIndex int    `json:"order_index"`
}

type TemplateResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	StepCount int            `json:"step_count"`
	Steps     []StepResponse `json:"steps,omitempty"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

type StartInstanceRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

type UpdateInstanceRequest struct {
	Action string `json:"action" validate:"required,oneof=complete"`
}

type SetStepCompletionRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}

type InstanceStepResponse struct {
	StepID      string  `json:"step_id"`
	StepText    string  `json:"step_text"`
	OrderIndex  int     `json:"order_index"`
	IsCompleted bool    `json:"is_completed"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type ProgressResponse struct {
	Progress       int `json:"progress"`
	TotalSteps     int `json:"total_steps"`
	CompletedSteps int `json:"completed_steps"`
}

type InstanceResponse struct {
	ID          string                 `json:"id"`
	TemplateID  string                 `json:"template_id"`
	Status      string                 `json:"status"`
	StartedAt   string                 `json:"started_at"`
	CompletedAt *string                `json:"completed_at,omitempty"`
	Progress    *ProgressResponse      `json:"progress,omitempty"`
	Steps       []InstanceStepResponse `json:"steps,omitempty"`
}

type CreateTeamRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description"`
	PrivacyLevel string `json:"privacy_level" validate:"omitempty,oneof=private public"`
}

type TeamResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	OwnerID      string `json:"owner_id"`
	PrivacyLevel string `json:"privacy_level"`
	CreatedAt    string `json:"created_at"`
}

type TeamSummaryResponse struct {
	Team TeamResponse `json:"team"`
	Role string       `json:"role"`
}

type TeamMemberResponse struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type TeamDetailResponse struct {
	Team               TeamResponse         `json:"team"`
	Members            []TeamMemberResponse `json:"members"`
	MemberCount        int                  `json:"member_count"`
	PendingInvitations int                  `json:"pending_invitations"`
	CallerRole         string               `json:"caller_role"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InvitationResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"team_id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at"`
	CreatedAt string `json:"created_at"`
}

type InvitationDetailResponse struct {
	TeamName        string `json:"team_name"`
	TeamDescription string `json:"team_description"`
	InviterName     string `json:"inviter_name"`
	Email           string `json:"email"`
	Status          string `json:"status"`
	ExpiresAt       string `json:"expires_at"`
}

type RespondInvitationRequest struct {
	Action string `json:"action" validate:"required,oneof=accept decline"`
}

type ShareTemplateRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

type SetOfficialRequest struct {
	IsOfficial *bool `json:"is_official" validate:"required"`
}

type SharedTemplateResponse struct {
	ID            string `json:"id"`
	TeamID        string `json:"team_id"`
	TemplateID    string `json:"template_id"`
	TemplateTitle string `json:"template_title,omitempty"`
	SharedBy      string `json:"shared_by"`
	SharedByName  string `json:"shared_by_name,omitempty"`
	IsOfficial    bool   `json:"is_official"`
	Status        string `json:"status"`
	SharedAt      string `json:"shared_at"`
}

type FavoriteRequest struct {
	TeamID string `json:"team_id"`
}

type FavoriteResponse struct {
	ID            string `json:"id"`
	TemplateID    string `json:"template_id"`
	TemplateTitle string `json:"template_title,omitempty"`
	TeamID        string `json:"team_id,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type FeedbackRequest struct {
	TeamID  string `json:"team_id"`
	Comment string `json:"comment" validate:"required"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

type FeedbackResponse struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	TeamID     string `json:"team_id,omitempty"`
	Comment    string `json:"comment"`
	Rating     *int   `json:"rating,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type TemplateStatsResponse struct {
	TemplateID    string   `json:"template_id"`
	FavoriteCount int      `json:"favorite_count"`
	FeedbackCount int      `json:"feedback_count"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}
