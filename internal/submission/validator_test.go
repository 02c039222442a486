package submission

import (
	"strings"
	"testing"

	"github.com/fivesolo/site-api/internal/phone"
)

func validRequest() Request {
	return Request{
		Name:             "Dana",
		Email:            "dana@example.com",
		Message:          "hi",
		PhoneCountryCode: "972",
		PhoneNational:    "501234567",
		PhoneE164:        "+972501234567",
	}
}

func TestValidateAccepts(t *testing.T) {
	v := NewValidator(phone.NewNormalizer("972"))

	normalized, kind := v.Validate(validRequest())
	if kind != "" {
		t.Fatalf("expected valid, got %s", kind)
	}
	if normalized.E164 != "+972501234567" {
		t.Errorf("unexpected normalized payload: %+v", normalized)
	}
}

func TestValidateMissingFields(t *testing.T) {
	v := NewValidator(phone.NewNormalizer("972"))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.Name = "" }},
		{"whitespace name", func(r *Request) { r.Name = "   " }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"empty message", func(r *Request) { r.Message = "\t\n" }},
		{"empty national", func(r *Request) { r.PhoneNational = ""; r.PhoneE164 = "+972" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if _, kind := v.Validate(req); kind != KindMissingFields {
				t.Errorf("expected missing_fields, got %q", kind)
			}
		})
	}
}

func TestValidateEmailShape(t *testing.T) {
	v := NewValidator(phone.NewNormalizer("972"))

	bad := []string{"dana", "dana@", "@example.com", "dana@example", "da na@example.com", "dana@exa mple.com"}
	for _, email := range bad {
		req := validRequest()
		req.Email = email
		if _, kind := v.Validate(req); kind != KindMissingFields {
			t.Errorf("email %q: expected missing_fields, got %q", email, kind)
		}
	}

	good := []string{"dana@example.com", "d.ana+tag@sub.example.co.il"}
	for _, email := range good {
		req := validRequest()
		req.Email = email
		if _, kind := v.Validate(req); kind != "" {
			t.Errorf("email %q: expected valid, got %q", email, kind)
		}
	}
}

func TestValidatePhoneLengthBounds(t *testing.T) {
	v := NewValidator(phone.NewNormalizer("972"))

	for _, national := range []string{"123456", strings.Repeat("5", 16)} {
		req := validRequest()
		req.PhoneNational = national
		req.PhoneE164 = "+972" + national
		if _, kind := v.Validate(req); kind != KindPhoneInvalid {
			t.Errorf("national %q: expected phone_invalid, got %q", national, kind)
		}
	}

	// Inclusive bounds.
	for _, national := range []string{"1234567", strings.Repeat("5", 15)} {
		req := validRequest()
		req.PhoneNational = national
		req.PhoneE164 = "+972" + national
		if _, kind := v.Validate(req); kind != "" {
			t.Errorf("national %q: expected valid, got %q", national, kind)
		}
	}
}

func TestValidateE164Consistency(t *testing.T) {
	v := NewValidator(phone.NewNormalizer("972"))

	req := validRequest()
	req.PhoneE164 = "+15551234567" // length fine, but does not match the parts
	if _, kind := v.Validate(req); kind != KindPhoneInvalid {
		t.Errorf("expected phone_invalid for e164 mismatch, got %q", kind)
	}

	// The server recomputes from normalized parts, so a client that sends an
	// unnormalized national with a matching normalized e164 still passes.
	req = validRequest()
	req.PhoneNational = "0501234567"
	req.PhoneE164 = "+972501234567"
	if _, kind := v.Validate(req); kind != "" {
		t.Errorf("expected valid after normalization, got %q", kind)
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	v := NewValidator(phone.NewNormalizer("972"))

	req := validRequest()
	req.Name = "  Dana  "
	before := req
	v.Validate(req)
	if req != before {
		t.Error("validator mutated its input")
	}
}
