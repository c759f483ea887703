package mailer

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/glowandgather/storefront/config"
	"github.com/glowandgather/storefront/internal/contact"
	"github.com/glowandgather/storefront/internal/domain"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers shop notification emails over SMTP. Sends run on a small
// worker pool so HTTP handlers never block on the SMTP round trip.
type Mailer struct {
	cfg  config.SmtpConfig
	pool *ants.Pool
}

// NewMailer creates a mailer with a background send pool. Returns a
// disabled no-op mailer when SMTP is turned off in the config.
func NewMailer(cfg config.SmtpConfig) (*Mailer, error) {
	m := &Mailer{cfg: cfg}
	if !cfg.Enabled {
		return m, nil
	}
	pool, err := ants.NewPool(4)
	if err != nil {
		return nil, errors.Wrap(err, "create mail pool")
	}
	m.pool = pool
	return m, nil
}

// Subscribe wires the mailer to bus topics. A new contact message triggers
// a notification to the shop inbox.
func (m *Mailer) Subscribe(bus EventBus.Bus) error {
	return bus.Subscribe(contact.TopicMessageCreated, m.onMessageCreated)
}

func (m *Mailer) onMessageCreated(message domain.ContactMessage) {
	subject := fmt.Sprintf("New contact message: %s", message.Subject)
	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s", message.Name, message.Email, message.Message)
	m.SendAsync(m.cfg.NotifyTo, subject, body)
}

// SendAsync queues a plain-text email on the worker pool. Disabled or
// misconfigured SMTP downgrades to a log line, never an error to the caller.
func (m *Mailer) SendAsync(to, subject, body string) {
	if !m.cfg.Enabled || m.pool == nil || to == "" {
		zap.L().Debug("mail notify skipped", zap.String("to", to), zap.String("subject", subject))
		return
	}
	err := m.pool.Submit(func() {
		if err := m.send(to, subject, body); err != nil {
			zap.L().Error("failed to send mail",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
			return
		}
		zap.L().Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	})
	if err != nil {
		zap.L().Error("failed to queue mail", zap.Error(err))
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

// Release shuts down the send pool.
func (m *Mailer) Release() {
	if m.pool != nil {
		m.pool.Release()
	}
}
