package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivesolo/site-api/internal/antispam"
	httpmiddleware "github.com/fivesolo/site-api/internal/http/middleware"
	"github.com/fivesolo/site-api/internal/i18n"
	"github.com/fivesolo/site-api/internal/phone"
	"github.com/fivesolo/site-api/internal/submission"
)

type staticCaptcha struct {
	success bool
}

func (s staticCaptcha) Verify(ctx context.Context, token, remoteIP string) (antispam.VerifyResult, error) {
	if token == "" {
		return antispam.VerifyResult{Success: false, ErrorCode: "missing-input-response"}, nil
	}
	return antispam.VerifyResult{Success: s.success}, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifySubmission(ctx context.Context, sub submission.Submission) error {
	return nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := submission.NewService(submission.ServiceConfig{
		Validator:      submission.NewValidator(phone.NewNormalizer("972")),
		Captcha:        staticCaptcha{success: true},
		Notifier:       noopNotifier{},
		MinSubmitDelay: 3 * time.Second,
	})
	return New(&Config{
		SubmissionHandler: submission.NewHandler(svc, nil),
		I18nHandler:       i18n.NewHandler(nil),
	})
}

func contactBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"name":               "Dana",
		"email":              "dana@example.com",
		"message":            "hi",
		"phone_country_code": "972",
		"phone_national":     "501234567",
		"phone_e164":         "+972501234567",
		"website":            "",
		"ts":                 time.Now().Add(-10 * time.Second).UnixMilli(),
		"turnstileToken":     "valid-token",
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestContactRoute(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(contactBody(t)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestContactOptions(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestI18nRoute(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/i18n/ru", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp i18n.DictionaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Locale != i18n.Russian {
		t.Errorf("expected ru, got %s", resp.Locale)
	}
}

func TestContactRateLimited(t *testing.T) {
	svc := submission.NewService(submission.ServiceConfig{
		Validator:      submission.NewValidator(phone.NewNormalizer("972")),
		Captcha:        staticCaptcha{success: true},
		Notifier:       noopNotifier{},
		MinSubmitDelay: 3 * time.Second,
	})
	r := New(&Config{
		SubmissionHandler: submission.NewHandler(svc, nil),
		RateLimiter:       httpmiddleware.NewTokenBucketLimiter(0.001, 1),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(contactBody(t)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(contactBody(t)))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", w.Code)
	}
}
