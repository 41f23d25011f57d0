package handler

import (
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: formatTime(user.CreatedAt),
	}
}

func domainTemplateToHTTP(template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) TemplateResponse {
	resp := TemplateResponse{
		ID:        template.ID,
		Title:     template.Title,
		StepCount: template.StepCount,
		CreatedAt: formatTime(template.CreatedAt),
		UpdatedAt: formatTime(template.UpdatedAt),
	}
	if steps != nil {
		resp.StepCount = len(steps)
		resp.Steps = make([]StepResponse, 0, len(steps))
		for _, step := range steps {
			resp.Steps = append(resp.Steps, StepResponse{
				ID:         step.ID,
				StepText:   step.StepText,
				OrderIndex: step.OrderIndex,
			})
		}
	}
	return resp
}

func domainProgressToHTTP(progress domain.InstanceProgress) *ProgressResponse {
	return &ProgressResponse{
		Progress:       progress.Progress,
		TotalSteps:     progress.TotalSteps,
		CompletedSteps: progress.CompletedSteps,
	}
}

func domainInstanceToHTTP(instance *domain.ChecklistInstance) InstanceResponse {
	return InstanceResponse{
		ID:          instance.ID,
		TemplateID:  instance.TemplateID,
		Status:      string(instance.Status),
		StartedAt:   formatTime(instance.StartedAt),
		CompletedAt: formatTimePtr(instance.CompletedAt),
	}
}

func domainInstanceStepsToHTTP(steps []*domain.InstanceStep) []InstanceStepResponse {
	result := make([]InstanceStepResponse, 0, len(steps))
	for _, step := range steps {
		result = append(result, InstanceStepResponse{
			StepID:      step.StepID,
			StepText:    step.StepText,
			OrderIndex:  step.OrderIndex,
			IsCompleted: step.IsCompleted,
			CompletedAt: formatTimePtr(step.CompletedAt),
		})
	}
	return result
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Description:  team.Description,
		OwnerID:      team.OwnerID,
		PrivacyLevel: string(team.PrivacyLevel),
		CreatedAt:    formatTime(team.CreatedAt),
	}
}

func domainMembersToHTTP(members []*domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, TeamMemberResponse{
			UserID:   member.UserID,
			Name:     member.UserName,
			Email:    member.UserEmail,
			Role:     string(member.Role),
			JoinedAt: formatTime(member.JoinedAt),
		})
	}
	return result
}

func domainInvitationToHTTP(invitation *domain.TeamInvitation) InvitationResponse {
	return InvitationResponse{
		ID:        invitation.ID,
		TeamID:    invitation.TeamID,
		Email:     invitation.InvitedEmail,
		Status:    string(invitation.Status),
		ExpiresAt: formatTime(invitation.ExpiresAt),
		CreatedAt: formatTime(invitation.CreatedAt),
	}
}

func domainShareToHTTP(share *domain.TeamTemplate) SharedTemplateResponse {
	return SharedTemplateResponse{
		ID:            share.ID,
		TeamID:        share.TeamID,
		TemplateID:    share.TemplateID,
		TemplateTitle: share.TemplateTitle,
		SharedBy:      share.SharedBy,
		SharedByName:  share.SharedByName,
		IsOfficial:    share.IsOfficial,
		Status:        string(share.Status),
		SharedAt:      formatTime(share.SharedAt),
	}
}

func domainFavoriteToHTTP(favorite *domain.TemplateFavorite) FavoriteResponse {
	return FavoriteResponse{
		ID:            favorite.ID,
		TemplateID:    favorite.TemplateID,
		TemplateTitle: favorite.TemplateTitle,
		TeamID:        favorite.TeamID,
		CreatedAt:     formatTime(favorite.CreatedAt),
	}
}

func domainFeedbackToHTTP(feedback *domain.TemplateFeedback) FeedbackResponse {
	return FeedbackResponse{
		ID:         feedback.ID,
		TemplateID: feedback.TemplateID,
		UserID:     feedback.UserID,
		UserName:   feedback.UserName,
		TeamID:     feedback.TeamID,
		Comment:    feedback.Comment,
		Rating:     feedback.Rating,
		CreatedAt:  formatTime(feedback.CreatedAt),
	}
}
