package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// NotifyContactMessage emails the site owner about a new contact form
// submission via the Resend API. Notification is best-effort: the message is
// already persisted when this runs, so failures are logged and swallowed.
//
// Requires environment variables:
//   - RESEND_API_KEY: Resend API key (notification is skipped when unset)
//   - RESEND_FROM_EMAIL: sender address
//   - CONTACT_NOTIFY_EMAIL: recipient address
func NotifyContactMessage(message models.ContactMessage) {
	apiKey := os.Getenv("RESEND_API_KEY")
	recipient := os.Getenv("CONTACT_NOTIFY_EMAIL")
	if apiKey == "" || recipient == "" {
		return
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "Portfolio <onboarding@resend.dev>"
	}

	body := ResendEmailRequest{
		From:    from,
		To:      []string{recipient},
		Subject: fmt.Sprintf("New contact message: %s", message.Subject),
		Text: fmt.Sprintf("From: %s <%s>\n\n%s",
			message.Name, message.Email, message.Message),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Msg("marshal contact notification payload")
		return
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		log.Error().Err(err).Msg("build contact notification request")
		return
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("send contact notification")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var resendErr ResendErrorResponse
		_ = json.Unmarshal(respBody, &resendErr)
		log.Error().
			Int("status", resp.StatusCode).
			Str("message", resendErr.Message).
			Msg("contact notification rejected by Resend")
		return
	}

	var resendResp ResendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&resendResp); err == nil {
		log.Info().Str("emailID", resendResp.ID).Msg("contact notification sent")
	}
}
