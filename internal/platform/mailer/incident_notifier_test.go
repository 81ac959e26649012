package mailer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/SscSPs/sales_commissions_app/internal/platform/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func testIncident() (domain.Incident, domain.Person) {
	reporterID := "p-1"
	incident := domain.Incident{
		IncidentID:   42,
		ReporterID:   &reporterID,
		Sales:        []domain.SaleRef{{SaleID: 7, Plate: "1234ABC"}},
		IncidentDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:         "Comisión",
		Detail:       "Falta la comisión de financiación",
		Status:       domain.IncidentPendingReview,
	}
	return incident, domain.Person{PersonID: reporterID, Username: "vventas", FirstName: "Valeria", LastName: "Ventas"}
}

func TestIncidentNotifier_Compose(t *testing.T) {
	n := mailer.NewIncidentNotifierWithSender(&fakeSender{}, "app@example.com", []string{"a@example.com", "b@example.com"})
	incident, reporter := testIncident()

	m := n.Compose(incident, reporter)
	assert.Equal(t, []string{"app@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Nueva incidencia #42 - 1234ABC"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Valeria Ventas")
	assert.Contains(t, buf.String(), "2024-03-05")
}

func TestIncidentNotifier_NotifyIncident(t *testing.T) {
	incident, reporter := testIncident()

	t.Run("sends one message", func(t *testing.T) {
		sender := &fakeSender{}
		n := mailer.NewIncidentNotifierWithSender(sender, "app@example.com", []string{"a@example.com"})
		require.NoError(t, n.NotifyIncident(context.Background(), incident, reporter))
		assert.Len(t, sender.sent, 1)
	})

	t.Run("wraps send failures", func(t *testing.T) {
		boom := errors.New("connection refused")
		n := mailer.NewIncidentNotifierWithSender(&fakeSender{err: boom}, "app@example.com", []string{"a@example.com"})
		err := n.NotifyIncident(context.Background(), incident, reporter)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context skips sending", func(t *testing.T) {
		sender := &fakeSender{}
		n := mailer.NewIncidentNotifierWithSender(sender, "app@example.com", []string{"a@example.com"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, n.NotifyIncident(ctx, incident, reporter), context.Canceled)
		assert.Empty(t, sender.sent)
	})
}
