package submission

import (
	"regexp"

	"github.com/fivesolo/site-api/internal/phone"
)

// National number digit-count bounds, country-independent.
const (
	MinNationalDigits = 7
	MaxNationalDigits = 15
)

// Loose shape check only; deliverability is not our problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator classifies a submission as well-formed or names the first failing
// check. It never mutates its input.
type Validator struct {
	normalizer *phone.Normalizer
}

// NewValidator builds a Validator using the given phone normalizer.
func NewValidator(normalizer *phone.Normalizer) *Validator {
	if normalizer == nil {
		normalizer = phone.NewNormalizer("")
	}
	return &Validator{normalizer: normalizer}
}

// Validate runs required-field, email-shape, phone-length and phone-consistency
// checks in order, returning the normalized phone payload on success. Email
// shape failures fold into KindMissingFields. The empty Kind means valid.
func (v *Validator) Validate(req Request) (phone.Payload, Kind) {
	req = req.trimmed()

	normalized := v.normalizer.Normalize(phone.RawPhone{
		CountryCode: req.PhoneCountryCode,
		National:    req.PhoneNational,
	})

	if req.Name == "" || req.Email == "" || req.Message == "" ||
		normalized.CountryCode == "" || normalized.National == "" {
		return phone.Payload{}, KindMissingFields
	}

	if !emailPattern.MatchString(req.Email) {
		return phone.Payload{}, KindMissingFields
	}

	if len(normalized.National) < MinNationalDigits || len(normalized.National) > MaxNationalDigits {
		return phone.Payload{}, KindPhoneInvalid
	}

	// The client submits its own E.164; recomputing and comparing catches
	// tampering and client drift instead of silently trusting the wire value.
	if req.PhoneE164 != phone.ToE164(normalized.CountryCode, normalized.National) {
		return phone.Payload{}, KindPhoneInvalid
	}

	return normalized, ""
}
