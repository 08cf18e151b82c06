package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewMailer picks a transport by kind: "log" (default), "noop", or an
// http(s) URL treated as a JSON webhook.
func NewMailer(kind, token, from string) Mailer {
	switch kind {
	case "", "log":
		return logMailer{}
	case "noop":
		return noopMailer{}
	default:
		if strings.HasPrefix(kind, "http://") || strings.HasPrefix(kind, "https://") {
			return webhookMailer{url: kind, token: token, from: from}
		}
		return logMailer{}
	}
}

type logMailer struct{}

func (logMailer) Send(ctx context.Context, to, subject, body string) error {
	log.Infof("mail to %s: %s", to, subject)
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, to, subject, body string) error {
	return nil
}

type webhookMailer struct {
	url   string
	token string
	from  string
}

func (m webhookMailer) Send(ctx context.Context, to, subject, body string) error {
	payload := map[string]string{
		"from":    m.from,
		"to":      to,
		"subject": subject,
		"body":    body,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.New("mail webhook rejected request")
	}
	return nil
}
