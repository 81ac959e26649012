// Package mailer sends the incident notification mail over SMTP.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/platform/config"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// IncidentNotifier mails every newly registered incident to a fixed list
// of recipients.
type IncidentNotifier struct {
	sender Sender
	from   string
	to     []string
}

// NewIncidentNotifier builds a notifier that dials the configured SMTP server.
func NewIncidentNotifier(cfg *config.Config) *IncidentNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return NewIncidentNotifierWithSender(dialer, cfg.SMTPFrom, cfg.IncidentNotifyTo)
}

// NewIncidentNotifierWithSender builds a notifier on top of any Sender.
func NewIncidentNotifierWithSender(sender Sender, from string, to []string) *IncidentNotifier {
	return &IncidentNotifier{sender: sender, from: from, to: to}
}

var _ portssvc.IncidentNotifier = (*IncidentNotifier)(nil)

// Compose builds the notification message of an incident.
func (n *IncidentNotifier) Compose(incident domain.Incident, reporter domain.Person) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to...)
	m.SetHeader("Subject", fmt.Sprintf("Nueva incidencia #%d - %s", incident.IncidentID, incident.PlateDisplay()))

	var body strings.Builder
	fmt.Fprintf(&body, "Se ha registrado una nueva incidencia.\n\n")
	fmt.Fprintf(&body, "Vendedor: %s (%s)\n", reporter.DisplayName(), reporter.Username)
	fmt.Fprintf(&body, "Fecha: %s\n", incident.IncidentDate.Format(period.DayLayout))
	fmt.Fprintf(&body, "Matrícula: %s\n", incident.PlateDisplay())
	fmt.Fprintf(&body, "Tipo: %s\n", incident.Type)
	fmt.Fprintf(&body, "Estado: %s\n\n", incident.Status.Label())
	fmt.Fprintf(&body, "Detalle:\n%s\n", incident.Detail)
	m.SetBody("text/plain", body.String())
	return m
}

// NotifyIncident sends the notification. The context is only checked
// before dialing; gomail has no cancellation support.
func (n *IncidentNotifier) NotifyIncident(ctx context.Context, incident domain.Incident, reporter domain.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.sender.DialAndSend(n.Compose(incident, reporter)); err != nil {
		return fmt.Errorf("failed to send incident %d notification: %w", incident.IncidentID, err)
	}
	return nil
}
