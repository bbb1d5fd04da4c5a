package services

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPSender mails template previews to the operator. Subjects are tagged
// and the variant travels in a header so preview traffic is unmistakable in
// the operator's inbox and in mail logs.
type SMTPSender struct {
	Host     string
	Port     string
	User     string
	Pass     string
	From     string
	FromName string
	UseTLS   bool
}

func (s *SMTPSender) SendPreview(to string, preview Preview) error {
	msg := s.buildMessage(to, preview)
	addr := net.JoinHostPort(s.Host, s.Port)
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)

	if s.UseTLS {
		return s.sendTLS(addr, auth, to, msg)
	}
	return smtp.SendMail(addr, auth, s.From, []string{to}, msg)
}

// buildMessage assembles the preview MIME message. Headers are written in a
// fixed order so the output is stable.
func (s *SMTPSender) buildMessage(to string, preview Preview) []byte {
	from := s.From
	if s.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.FromName, s.From)
	}

	var msg strings.Builder
	writeHeader := func(k, v string) {
		msg.WriteString(k)
		msg.WriteString(": ")
		msg.WriteString(v)
		msg.WriteString("\r\n")
	}

	writeHeader("From", from)
	writeHeader("To", to)
	writeHeader("Subject", "[Preview] "+preview.Subject)
	writeHeader("X-LocalBoost-Preview", preview.Variant)
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/plain; charset="utf-8"`)
	msg.WriteString("\r\n")
	msg.WriteString(preview.Body)

	return []byte(msg.String())
}

func (s *SMTPSender) sendTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.Host})
	if err != nil {
		return fmt.Errorf("failed to dial smtp over tls: %w", err)
	}

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer c.Quit()

	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := c.Mail(s.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	_, err = w.Write(msg)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}
