package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"clubsessions/internal/domain"
)

type announcementService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	recipients []string
	logger     *slog.Logger
}

// NewAnnouncementService returns an AnnouncementService that mails every new
// session to recipients using the "session_created" template.
func NewAnnouncementService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipients []string, logger *slog.Logger) domain.AnnouncementService {
	return &announcementService{mailer: mailer, renderer: renderer, recipients: recipients, logger: logger}
}

// AnnounceSession renders the announcement once and sends it to each recipient.
// Errors from individual recipients are joined; the remaining recipients are still tried.
func (s *announcementService) AnnounceSession(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	if len(s.recipients) == 0 {
		return nil
	}
	data := &domain.SessionAnnouncementData{
		Session:   session,
		StartsAt:  session.Date + " " + session.Time,
		SpotsLeft: session.Participants.Max - session.Participants.Current,
	}
	if t, err := session.StartsAt(); err == nil {
		data.StartsAt = t.Format("Monday, January 2 at 15:04")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("session_created", data)
	if err != nil {
		return fmt.Errorf("failed to render session_created template: %w", err)
	}

	var errs []error
	for _, to := range s.recipients {
		if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", to, err))
			continue
		}
		s.logger.InfoContext(ctx, "session announcement sent", "to", to, "session_id", session.ID)
	}
	return errors.Join(errs...)
}
