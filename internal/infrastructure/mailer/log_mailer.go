package mailer

import (
	"context"
	"net/url"
	"strings"

	"logistica_cotizaciones/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// VerifyEmailPath is the public route that consumes a verification token.
const VerifyEmailPath = "/v1/auth/verify-email"

// LogMailer stands in for an SMTP sender: it writes the verification link to
// the log so operators can hand it over.
type LogMailer struct {
	logger  *zap.Logger
	baseURL string
}

var _ interfaces.IVerificationMailer = (*LogMailer)(nil)

func NewLogMailer(logger *zap.Logger, baseURL string) *LogMailer {
	return &LogMailer{logger: logger, baseURL: strings.TrimRight(baseURL, "/")}
}

func (m *LogMailer) SendVerification(_ context.Context, email, token string) error {
	m.logger.Info("mailer verification link issued",
		zap.String("email", email), zap.String("link", m.VerificationLink(token)))
	return nil
}

// VerificationLink is the URL sent to the user.
func (m *LogMailer) VerificationLink(token string) string {
	return m.baseURL + VerifyEmailPath + "?token=" + url.QueryEscape(token)
}
