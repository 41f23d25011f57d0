package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/notifier"
	"github.com/bagdasarian/team-checklist/internal/repository"
	"go.uber.org/zap"
)

const invitationTTL = 7 * 24 * time.Hour

type invitationService struct {
	invitationRepo repository.InvitationRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
	sender         notifier.Sender
	baseURL        string
	log            *zap.SugaredLogger
}

// NewInvitationService создает новый экземпляр InvitationService
func NewInvitationService(
	invitationRepo repository.InvitationRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	sender notifier.Sender,
	baseURL string,
	log *zap.SugaredLogger,
) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		sender:         sender,
		baseURL:        baseURL,
		log:            log,
	}
}

// generateToken выдает криптографически случайный токен (64 hex-символа)
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create создает pending-приглашение и best-effort отправляет уведомление.
// Строка приглашения - источник истины: сбой доставки не откатывает запись.
func (s *invitationService) Create(ctx context.Context, identity domain.Identity, teamID, email string) (*domain.TeamInvitation, error) {
	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner, domain.RoleAdmin); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	// нормализация email только при создании
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.invitationRepo.GetPendingByTeamAndEmail(ctx, teamID, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("invitation already sent to this email")
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	invitation := &domain.TeamInvitation{
		TeamID:       teamID,
		InvitedEmail: email,
		InvitedBy:    identity.UserID,
		Token:        token,
		Status:       domain.InvitationPending,
		ExpiresAt:    time.Now().Add(invitationTTL),
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.notify(ctx, invitation, team.Name)

	return invitation, nil
}

func (s *invitationService) notify(ctx context.Context, invitation *domain.TeamInvitation, teamName string) {
	inviterName := s.inviterDisplayName(ctx, invitation.InvitedBy)
	err := s.sender.Send(ctx, notifier.Invitation{
		ToEmail:       invitation.InvitedEmail,
		TeamName:      teamName,
		InviterName:   inviterName,
		InvitationURL: fmt.Sprintf("%s/invitations/%s", s.baseURL, invitation.Token),
		ExpiresAt:     invitation.ExpiresAt,
	})
	if err != nil {
		s.log.Errorw("invitation notification failed",
			"invitation_id", invitation.ID,
			"to", invitation.InvitedEmail,
			"error", err,
		)
	}
}

func (s *invitationService) inviterDisplayName(ctx context.Context, userID string) string {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}

func (s *invitationService) List(ctx context.Context, identity domain.Identity, teamID string) ([]*domain.TeamInvitation, error) {
	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner, domain.RoleAdmin); err != nil {
		return nil, err
	}

	invitations, err := s.invitationRepo.ListPendingByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	// просроченные показываем как expired, не меняя хранимый статус
	now := time.Now()
	for _, invitation := range invitations {
		invitation.Status = invitation.EffectiveStatus(now)
	}
	return invitations, nil
}

// Cancel переводит pending-приглашение в cancelled
func (s *invitationService) Cancel(ctx context.Context, identity domain.Identity, teamID, invitationID string) error {
	if _, err := s.requireManageable(ctx, identity, teamID, invitationID); err != nil {
		return err
	}

	return s.invitationRepo.UpdateStatus(ctx, invitationID, domain.InvitationCancelled)
}

// Resend повторно отправляет уведомление с существующим токеном:
// ни токен, ни срок действия не обновляются
func (s *invitationService) Resend(ctx context.Context, identity domain.Identity, teamID, invitationID string) error {
	invitation, err := s.requireManageable(ctx, identity, teamID, invitationID)
	if err != nil {
		return err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("team")
		}
		return err
	}

	s.notify(ctx, invitation, team.Name)
	return nil
}

// requireManageable: роль owner/admin, приглашение принадлежит команде
// и все еще pending в хранилище
func (s *invitationService) requireManageable(ctx context.Context, identity domain.Identity, teamID, invitationID string) (*domain.TeamInvitation, error) {
	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner, domain.RoleAdmin); err != nil {
		return nil, err
	}

	invitation, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("invitation")
		}
		return nil, err
	}
	if invitation.TeamID != teamID {
		return nil, domain.NewNotFoundError("invitation")
	}
	if invitation.Status != domain.InvitationPending {
		return nil, domain.NewValidationError("invitation is not pending")
	}

	return invitation, nil
}

// GetByToken - чтение деталей приглашения по токену.
// Просрочка проверяется до pending-проверки.
func (s *invitationService) GetByToken(ctx context.Context, token string) (*domain.TeamInvitation, error) {
	invitation, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("invitation")
		}
		return nil, err
	}

	if invitation.EffectiveStatus(time.Now()) == domain.InvitationExpired {
		return nil, domain.ErrInvitationExpired
	}
	if invitation.Status != domain.InvitationPending {
		return nil, domain.NewValidationError(
			fmt.Sprintf("invitation has already been %s", invitation.Status),
		)
	}

	return invitation, nil
}

// Respond обрабатывает accept/decline по токену.
// Порядок проверок: неизвестный токен, просрочка, уже обработано,
// несовпадение email, существующее членство.
func (s *invitationService) Respond(ctx context.Context, identity domain.Identity, token string, action InvitationAction) (*domain.TeamInvitation, error) {
	if action != InvitationAccept && action != InvitationDecline {
		return nil, domain.NewValidationError("action must be 'accept' or 'decline'")
	}

	invitation, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("invitation")
		}
		return nil, err
	}

	if invitation.EffectiveStatus(time.Now()) == domain.InvitationExpired {
		return nil, domain.ErrInvitationExpired
	}
	if invitation.Status != domain.InvitationPending {
		return nil, domain.NewValidationError(
			fmt.Sprintf("invitation has already been %s", invitation.Status),
		)
	}

	// сравнение как сохранено: нормализация была только при создании
	if identity.Email != invitation.InvitedEmail {
		return nil, domain.NewForbiddenError("this invitation was sent to a different email address")
	}

	if action == InvitationDecline {
		if err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, domain.InvitationDeclined); err != nil {
			return nil, err
		}
		invitation.Status = domain.InvitationDeclined
		return invitation, nil
	}

	existing, err := s.teamRepo.GetMembership(ctx, invitation.TeamID, identity.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("you are already a member of this team")
	}

	member := &domain.TeamMember{
		TeamID: invitation.TeamID,
		UserID: identity.UserID,
		Role:   domain.RoleMember,
	}
	if err := s.teamRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}
	if err := s.invitationRepo.UpdateStatus(ctx, invitation.ID, domain.InvitationAccepted); err != nil {
		return nil, err
	}

	invitation.Status = domain.InvitationAccepted
	return invitation, nil
}
