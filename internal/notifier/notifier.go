package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Invitation - данные для письма-приглашения в команду
type Invitation struct {
	ToEmail       string
	TeamName      string
	InviterName   string
	InvitationURL string
	ExpiresAt     time.Time
}

// Sender отправляет уведомление о приглашении. Отправка best-effort:
// ошибка логируется вызывающим и не откатывает создание приглашения.
type Sender interface {
	Send(ctx context.Context, invitation Invitation) error
}

// LogSender пишет приглашение в лог вместо реальной доставки.
// Используется, пока не подключен почтовый транспорт.
type LogSender struct {
	log *zap.SugaredLogger
}

func NewLogSender(log *zap.SugaredLogger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, invitation Invitation) error {
	s.log.Infow("team invitation notification",
		"to", invitation.ToEmail,
		"team", invitation.TeamName,
		"inviter", invitation.InviterName,
		"url", invitation.InvitationURL,
		"expires_at", invitation.ExpiresAt,
	)
	return nil
}
