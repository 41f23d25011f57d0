package service

import (
	"context"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/notifier"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) error {
	args := m.Called(ctx, template, steps)
	return args.Error(0)
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id string) (*domain.ChecklistTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChecklistTemplate), args.Error(1)
}

func (m *MockTemplateRepository) GetSteps(ctx context.Context, templateID string) ([]*domain.ChecklistStep, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChecklistStep), args.Error(1)
}

func (m *MockTemplateRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ChecklistTemplate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChecklistTemplate), args.Error(1)
}

func (m *MockTemplateRepository) Update(ctx context.Context, template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) error {
	args := m.Called(ctx, template, steps)
	return args.Error(0)
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInstanceRepository struct {
	mock.Mock
}

func (m *MockInstanceRepository) Create(ctx context.Context, instance *domain.ChecklistInstance, steps []*domain.InstanceStep) error {
	args := m.Called(ctx, instance, steps)
	return args.Error(0)
}

func (m *MockInstanceRepository) GetByID(ctx context.Context, id string) (*domain.ChecklistInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChecklistInstance), args.Error(1)
}

func (m *MockInstanceRepository) GetSteps(ctx context.Context, instanceID string) ([]*domain.InstanceStep, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InstanceStep), args.Error(1)
}

func (m *MockInstanceRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ChecklistInstance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChecklistInstance), args.Error(1)
}

func (m *MockInstanceRepository) SetStepCompletion(ctx context.Context, instanceID, stepID string, isCompleted bool, completedAt *time.Time) (*domain.InstanceStep, error) {
	args := m.Called(ctx, instanceID, stepID, isCompleted, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InstanceStep), args.Error(1)
}

func (m *MockInstanceRepository) Complete(ctx context.Context, instanceID string, completedAt time.Time) (*domain.ChecklistInstance, error) {
	args := m.Called(ctx, instanceID, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChecklistInstance), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Team, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.TeamSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamSummary), args.Error(1)
}

func (m *MockTeamRepository) GetMembership(ctx context.Context, teamID, userID string) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) GetMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) UpdateMemberRole(ctx context.Context, teamID, userID string, role domain.Role) error {
	args := m.Called(ctx, teamID, userID, role)
	return args.Error(0)
}

type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, invitation *domain.TeamInvitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}

func (m *MockInvitationRepository) GetByID(ctx context.Context, id string) (*domain.TeamInvitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamInvitation), args.Error(1)
}

func (m *MockInvitationRepository) GetByToken(ctx context.Context, token string) (*domain.TeamInvitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamInvitation), args.Error(1)
}

func (m *MockInvitationRepository) GetPendingByTeamAndEmail(ctx context.Context, teamID, email string) (*domain.TeamInvitation, error) {
	args := m.Called(ctx, teamID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamInvitation), args.Error(1)
}

func (m *MockInvitationRepository) ListPendingByTeamID(ctx context.Context, teamID string) ([]*domain.TeamInvitation, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamInvitation), args.Error(1)
}

func (m *MockInvitationRepository) CountPendingByTeamID(ctx context.Context, teamID string) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

func (m *MockInvitationRepository) UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockSharingRepository struct {
	mock.Mock
}

func (m *MockSharingRepository) Create(ctx context.Context, share *domain.TeamTemplate) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockSharingRepository) GetActive(ctx context.Context, teamID, templateID string) (*domain.TeamTemplate, error) {
	args := m.Called(ctx, teamID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamTemplate), args.Error(1)
}

func (m *MockSharingRepository) ListActiveByTeamID(ctx context.Context, teamID string) ([]*domain.TeamTemplate, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamTemplate), args.Error(1)
}

func (m *MockSharingRepository) SetStatus(ctx context.Context, teamID, templateID string, status domain.ShareStatus) (*domain.TeamTemplate, error) {
	args := m.Called(ctx, teamID, templateID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamTemplate), args.Error(1)
}

func (m *MockSharingRepository) SetOfficial(ctx context.Context, teamID, templateID string, isOfficial bool) (*domain.TeamTemplate, error) {
	args := m.Called(ctx, teamID, templateID, isOfficial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamTemplate), args.Error(1)
}

func (m *MockSharingRepository) HasActiveShareForUser(ctx context.Context, templateID, userID string) (bool, error) {
	args := m.Called(ctx, templateID, userID)
	return args.Bool(0), args.Error(1)
}

type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) CreateFavorite(ctx context.Context, favorite *domain.TemplateFavorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockEngagementRepository) GetFavorite(ctx context.Context, userID, templateID, teamID string) (*domain.TemplateFavorite, error) {
	args := m.Called(ctx, userID, templateID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TemplateFavorite), args.Error(1)
}

func (m *MockEngagementRepository) DeleteFavorite(ctx context.Context, userID, templateID, teamID string) error {
	args := m.Called(ctx, userID, templateID, teamID)
	return args.Error(0)
}

func (m *MockEngagementRepository) ListFavoritesByUserID(ctx context.Context, userID string) ([]*domain.TemplateFavorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TemplateFavorite), args.Error(1)
}

func (m *MockEngagementRepository) CreateFeedback(ctx context.Context, feedback *domain.TemplateFeedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockEngagementRepository) GetFeedback(ctx context.Context, userID, templateID, teamID string) (*domain.TemplateFeedback, error) {
	args := m.Called(ctx, userID, templateID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TemplateFeedback), args.Error(1)
}

func (m *MockEngagementRepository) ListFeedbackByTemplateID(ctx context.Context, templateID string) ([]*domain.TemplateFeedback, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TemplateFeedback), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetTemplateStats(ctx context.Context, templateID string) (*domain.TemplateStats, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TemplateStats), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, invitation notifier.Invitation) error {
	args := m.Called(ctx, invitation)
	return args.Error(0)
}
