package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

type ResendProvider struct {
	apiKey   string
	from     string
	fromName string
	client   *http.Client
}

func NewResendProvider(apiKey, from, fromName string) *ResendProvider {
	return &ResendProvider{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *ResendProvider) Name() string { return "resend" }

func (p *ResendProvider) Send(msg Message) error {
	payload := map[string]interface{}{
		"from":    fmt.Sprintf("%s <%s>", p.fromName, p.from),
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTMLBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
