package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type BrevoProvider struct {
	apiKey   string
	from     string
	fromName string
	client   *http.Client
}

func NewBrevoProvider(apiKey, from, fromName string) *BrevoProvider {
	return &BrevoProvider{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *BrevoProvider) Name() string { return "brevo" }

func (p *BrevoProvider) Send(msg Message) error {
	payload := map[string]interface{}{
		"sender": map[string]string{
			"email": p.from,
			"name":  p.fromName,
		},
		"to": []map[string]string{
			{"email": msg.To, "name": msg.ToName},
		},
		"subject":     msg.Subject,
		"htmlContent": msg.HTMLBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
