package submission

import "net/http"

// Kind is the stable machine-readable failure code returned to clients.
// Spellings are part of the wire contract; clients switch on them to pick a
// localized message.
type Kind string

const (
	KindHoneypot      Kind = "honeypot"
	KindTooFast       Kind = "too_fast"
	KindCaptchaFailed Kind = "captcha_failed"
	KindMissingFields Kind = "missing_fields"
	KindPhoneInvalid  Kind = "phone_invalid"
	KindConfigMissing Kind = "config_missing"
	KindSendFailed    Kind = "send_failed"
)

// HTTPStatus maps the kind to its response status: 400 for caller faults,
// 500 for environment faults.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindConfigMissing, KindSendFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// CallerFault reports whether the failure is recoverable by the submitter.
func (k Kind) CallerFault() bool {
	return k.HTTPStatus() == http.StatusBadRequest
}

func (k Kind) String() string {
	return string(k)
}
