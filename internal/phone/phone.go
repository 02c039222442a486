package phone

import "strings"

// DefaultCountryCode is the dial code assumed when a submission carries none.
const DefaultCountryCode = "972"

// Payload is the canonical representation of a submitted phone number.
// E164 always equals "+" + CountryCode + National.
type Payload struct {
	CountryCode string `json:"country_code"`
	National    string `json:"national"`
	E164        string `json:"e164"`
}

// RawPhone carries the unnormalized parts as submitted by the client.
type RawPhone struct {
	CountryCode string
	National    string
}

// DigitsOnly strips every character that is not an ASCII digit.
func DigitsOnly(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] >= '0' && input[i] <= '9' {
			b.WriteByte(input[i])
		}
	}
	return b.String()
}

// StripLeadingZero removes exactly one leading "0" if present.
func StripLeadingZero(input string) string {
	if strings.HasPrefix(input, "0") {
		return input[1:]
	}
	return input
}

// ToE164 composes the E.164 representation from country code and national number.
// It performs no validation; callers normalize first.
func ToE164(countryCode, national string) string {
	return "+" + countryCode + national
}

// Normalizer converts raw phone input into a canonical Payload.
type Normalizer struct {
	defaultCountryCode string
}

// NewNormalizer builds a Normalizer with the given fallback dial code.
// An empty code falls back to DefaultCountryCode.
func NewNormalizer(defaultCountryCode string) *Normalizer {
	code := DigitsOnly(defaultCountryCode)
	if code == "" {
		code = DefaultCountryCode
	}
	return &Normalizer{defaultCountryCode: code}
}

// Normalize applies digit stripping to the country code (falling back to the
// configured default when empty), digit stripping plus single-leading-zero
// removal to the national number, and derives the E.164 form. Idempotent.
func (n *Normalizer) Normalize(raw RawPhone) Payload {
	cc := DigitsOnly(raw.CountryCode)
	if cc == "" {
		cc = n.defaultCountryCode
	}
	national := StripLeadingZero(DigitsOnly(raw.National))
	return Payload{
		CountryCode: cc,
		National:    national,
		E164:        ToE164(cc, national),
	}
}
