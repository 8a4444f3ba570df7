package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SessionAnnouncementData holds data for the "session_created" email.
type SessionAnnouncementData struct {
	Session   *Session
	StartsAt  string
	SpotsLeft int
}

// AnnouncementService tells the community about newly created sessions.
type AnnouncementService interface {
	AnnounceSession(ctx context.Context, session *Session) error
}
