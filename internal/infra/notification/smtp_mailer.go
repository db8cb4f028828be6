package notification

import (
	"context"
	"time"

	"gtfstrigger/config"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/errors"

	"github.com/wneessen/go-mail"
)

const defaultSMTPPort = 587

// ErrMailerNotConfigured is returned when no SMTP host is configured.
var ErrMailerNotConfigured = errors.New("smtp is not configured")

type sendFunc func(ctx context.Context, msg *mail.Msg) error

// smtpMailer sends plain text UTF-8 mail through the configured relay,
// upgrading with STARTTLS when the server offers it.
type smtpMailer struct {
	cfg     config.SMTPConfig
	timeout time.Duration
	send    sendFunc
}

// NewSMTPMailer creates a MailSender for the configured relay.
func NewSMTPMailer(cfg config.SMTPConfig, timeout time.Duration) service.MailSender {
	m := &smtpMailer{cfg: cfg, timeout: timeout}
	m.send = m.dialAndSend

	return m
}

func (m *smtpMailer) SendMail(ctx context.Context, to, subject, body string) error {
	if m.cfg.Host == "" {
		return ErrMailerNotConfigured
	}

	msg, err := m.newMessage(to, subject, body)
	if err != nil {
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

func (m *smtpMailer) newMessage(to, subject, body string) (*mail.Msg, error) {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}

func (m *smtpMailer) clientOptions() []mail.Option {
	port := m.cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.timeout > 0 {
		opts = append(opts, mail.WithTimeout(m.timeout))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	return opts
}

func (m *smtpMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	return errors.WithStack(client.DialAndSendWithContext(ctx, msg))
}
