package notify

import "log/slog"

// Fixed notification template. The wording is part of the product contract.
const (
	SubjectPrefix = "Disponible: "
	Body          = "Ya puedes solicitarlo"
)

// Gateway is the external collaborator that delivers availability emails.
// Delivery semantics (retries, queuing) are the host application's concern.
type Gateway interface {
	SendEmail(to, subject, body string)
}

// ConsoleGateway writes every email to the structured log instead of
// delivering it. Used by the demo runner and as a development sink.
type ConsoleGateway struct {
	logger *slog.Logger
}

// NewConsoleGateway creates a console gateway logging through the given logger.
func NewConsoleGateway(logger *slog.Logger) *ConsoleGateway {
	return &ConsoleGateway{logger: logger}
}

// SendEmail implements Gateway by logging the message.
func (g *ConsoleGateway) SendEmail(to, subject, body string) {
	g.logger.Info("email sent", "to", to, "subject", subject, "body", body)
}
