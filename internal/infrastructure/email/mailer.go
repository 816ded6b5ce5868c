// Package email implements the outbound mail collaborator. The platform
// treats delivery as best-effort: callers never fail an operation because a
// message could not be sent.
package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/assetbridge/investment-platform/internal/api/metrics"
)

// LogMailer renders outbound mail into the structured log instead of talking
// to a real provider. It stands in for the provider integration in
// development and tests; the reset link it logs is the documented fallback
// when real delivery is unavailable.
type LogMailer struct {
	baseURL string
	log     zerolog.Logger
}

func NewLogMailer(baseURL string, log zerolog.Logger) *LogMailer {
	return &LogMailer{baseURL: baseURL, log: log}
}

func (m *LogMailer) SendPasswordResetEmail(_ context.Context, email, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)
	m.log.Info().
		Str("to", email).
		Str("subject", "Reset your password").
		Str("link", link).
		Msg("password reset email dispatched")
	metrics.EmailDispatchTotal.WithLabelValues("delivered").Inc()
	return nil
}
