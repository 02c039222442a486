package antispam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fivesolo/site-api/pkg/logging"
)

var turnstileTracer = otel.Tracer("fivesolo.internal.antispam.turnstile")

// TurnstileEndpoint is Cloudflare's server-side verification endpoint.
const TurnstileEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// ErrMissingSecret signals that the server has no Turnstile secret configured.
// Verification must never be skipped in that case.
var ErrMissingSecret = errors.New("antispam: turnstile secret not configured")

// VerifyResult is the outcome of one Turnstile token verification.
type VerifyResult struct {
	Success bool
	// ErrorCode carries the provider's first error code when Success is false.
	// Pass-through only; used for logging.
	ErrorCode string
}

// TurnstileVerifier redeems challenge tokens against Cloudflare Turnstile.
type TurnstileVerifier struct {
	secretKey  string
	endpoint   string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewTurnstileVerifier builds a verifier for the given secret key.
func NewTurnstileVerifier(secretKey string, logger *logging.Logger) *TurnstileVerifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &TurnstileVerifier{
		secretKey: secretKey,
		endpoint:  TurnstileEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type turnstileResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Verify redeems token with the provider. An empty token short-circuits to a
// failed result without a network call. A missing secret returns
// ErrMissingSecret. Network or provider errors come back as a failed result
// with a synthetic error code, never as a success.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (VerifyResult, error) {
	if v.secretKey == "" {
		return VerifyResult{Success: false, ErrorCode: "missing_secret"}, ErrMissingSecret
	}
	if strings.TrimSpace(token) == "" {
		return VerifyResult{Success: false, ErrorCode: "missing-input-response"}, nil
	}

	ctx, span := turnstileTracer.Start(ctx, "antispam.turnstile.verify")
	defer span.End()

	form := url.Values{}
	form.Set("secret", v.secretKey)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		span.RecordError(err)
		return VerifyResult{Success: false, ErrorCode: "request_error"}, nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		v.logger.Warn("turnstile verification request failed", "error", err)
		return VerifyResult{Success: false, ErrorCode: "network_error"}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		v.logger.Warn("turnstile verification returned non-2xx", "status", resp.StatusCode)
		return VerifyResult{Success: false, ErrorCode: fmt.Sprintf("http_%d", resp.StatusCode)}, nil
	}

	var payload turnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.RecordError(err)
		return VerifyResult{Success: false, ErrorCode: "decode_error"}, nil
	}

	span.SetAttributes(attribute.Bool("turnstile.success", payload.Success))
	if payload.Success {
		return VerifyResult{Success: true}, nil
	}

	code := ""
	if len(payload.ErrorCodes) > 0 {
		code = payload.ErrorCodes[0]
	}
	return VerifyResult{Success: false, ErrorCode: code}, nil
}

// WithEndpoint overrides the verification endpoint. Test hook.
func (v *TurnstileVerifier) WithEndpoint(endpoint string) *TurnstileVerifier {
	v.endpoint = endpoint
	return v
}
