package mailer

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/johnquangdev/meeting-summary/pkg/config"
)

// SMTPMailer delivers messages through an authenticated SMTP relay
type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	timeout   time.Duration
	tlsPolicy mail.TLSPolicy
}

// NewSMTPMailer creates a mailer for the relay in cfg, authenticating as
// the configured sender.
func NewSMTPMailer(cfg *config.EmailConfig) *SMTPMailer {
	timeout := cfg.SMTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SenderEmail,
		password:  cfg.SenderAppPassword,
		timeout:   timeout,
		tlsPolicy: mail.TLSMandatory,
	}
}

// Send opens one SMTP session, upgrades it with STARTTLS, authenticates,
// sends msg and closes the session whether or not sending succeeded.
func (m *SMTPMailer) Send(ctx context.Context, msg *mail.Msg) error {
	conns := &trackedConns{}

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithTLSPolicy(m.tlsPolicy),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTimeout(m.timeout),
		mail.WithDialContextFunc(conns.dialer(m.timeout)),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	// go-mail leaves the connection open when the handshake fails after dial
	// (EHLO, STARTTLS, AUTH), so close whatever was dialed ourselves.
	defer conns.closeAll()

	return client.DialAndSendWithContext(ctx, msg)
}

// trackedConns remembers every connection dialed for one Send
type trackedConns struct {
	mu    sync.Mutex
	conns []net.Conn
}

func (t *trackedConns) dialer(timeout time.Duration) mail.DialContextFunc {
	d := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		conn, err := d.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}
		t.mu.Lock()
		t.conns = append(t.conns, conn)
		t.mu.Unlock()
		return conn, nil
	}
}

// closeAll closes every tracked connection. Connections already closed by
// a clean QUIT return an error that is ignored.
func (t *trackedConns) closeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range t.conns {
		_ = c.Close()
	}
	t.conns = nil
}
