package submission

import (
	"strings"

	"github.com/fivesolo/site-api/internal/i18n"
	"github.com/fivesolo/site-api/internal/phone"
)

// Request is the wire shape of a contact form submission.
type Request struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Message          string `json:"message"`
	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNational    string `json:"phone_national"`
	PhoneE164        string `json:"phone_e164"`
	// Website is the honeypot field; humans never fill it.
	Website string `json:"website"`
	// TS is the client-recorded render timestamp (epoch ms, string or number).
	TS             FlexibleString `json:"ts"`
	TurnstileToken string         `json:"turnstileToken"`
	Locale         string         `json:"locale"`
}

// Submission is one validated, normalized contact request. Request-scoped,
// never persisted.
type Submission struct {
	Name    string
	Email   string
	Message string
	Phone   phone.Payload
	Locale  i18n.Locale
}

// trimmed returns the request with its user-facing text fields trimmed.
func (r Request) trimmed() Request {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	return r
}
