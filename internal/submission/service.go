package submission

import (
	"context"
	"errors"
	"time"

	"github.com/fivesolo/site-api/internal/antispam"
	"github.com/fivesolo/site-api/internal/i18n"
	"github.com/fivesolo/site-api/internal/observability/metrics"
	"github.com/fivesolo/site-api/pkg/logging"
)

// Notifier dispatches the transactional email for an accepted submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, sub Submission) error
}

// CaptchaVerifier redeems a challenge token with the anti-abuse provider.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (antispam.VerifyResult, error)
}

// Service runs the contact pipeline: gate -> validate -> notify, short-circuiting
// on the first failing stage. One instance serves all requests; it holds no
// per-request state.
type Service struct {
	validator *Validator
	captcha   CaptchaVerifier
	notifier  Notifier
	metrics   *metrics.SubmissionMetrics
	logger    *logging.Logger

	minSubmitDelay time.Duration
	// exposeConfigErrors surfaces config_missing instead of captcha_failed
	// when the Turnstile secret is absent. Off in production.
	exposeConfigErrors bool
	now                func() time.Time
}

// ServiceConfig collects the Service dependencies.
type ServiceConfig struct {
	Validator          *Validator
	Captcha            CaptchaVerifier
	Notifier           Notifier
	Metrics            *metrics.SubmissionMetrics
	Logger             *logging.Logger
	MinSubmitDelay     time.Duration
	ExposeConfigErrors bool
}

// NewService creates a submission service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Validator == nil {
		cfg.Validator = NewValidator(nil)
	}
	if cfg.MinSubmitDelay <= 0 {
		cfg.MinSubmitDelay = antispam.DefaultMinSubmitDelay
	}
	return &Service{
		validator:          cfg.Validator,
		captcha:            cfg.Captcha,
		notifier:           cfg.Notifier,
		metrics:            cfg.Metrics,
		logger:             cfg.Logger,
		minSubmitDelay:     cfg.MinSubmitDelay,
		exposeConfigErrors: cfg.ExposeConfigErrors,
		now:                time.Now,
	}
}

// Process runs the pipeline for one request. The returned Kind is empty on
// success; remoteIP is forwarded to the captcha provider only.
func (s *Service) Process(ctx context.Context, req Request, remoteIP string) Kind {
	kind := s.process(ctx, req, remoteIP)
	if kind == "" {
		s.metrics.ObserveSubmission("ok")
	} else {
		s.metrics.ObserveSubmission(kind.String())
	}
	return kind
}

func (s *Service) process(ctx context.Context, req Request, remoteIP string) Kind {
	// Honeypot dominates every other check; reject before any I/O.
	if antispam.IsHoneypotHit(req.Website) {
		s.logger.Info("submission rejected: honeypot hit", "remote_ip", remoteIP)
		return KindHoneypot
	}

	if antispam.TooFast(req.TS.String(), s.minSubmitDelay, s.now()) {
		s.logger.Info("submission rejected: too fast", "remote_ip", remoteIP)
		return KindTooFast
	}

	if s.captcha == nil {
		s.logger.Error("no captcha verifier configured; rejecting submission")
		if s.exposeConfigErrors {
			return KindConfigMissing
		}
		return KindCaptchaFailed
	}

	start := s.now()
	result, err := s.captcha.Verify(ctx, req.TurnstileToken, remoteIP)
	s.metrics.ObserveCaptchaLatency(s.now().Sub(start).Seconds())
	if err != nil {
		if errors.Is(err, antispam.ErrMissingSecret) {
			s.logger.Error("turnstile secret not configured; rejecting submission")
			if s.exposeConfigErrors {
				return KindConfigMissing
			}
			return KindCaptchaFailed
		}
		s.logger.Error("captcha verification error", "error", err)
		return KindCaptchaFailed
	}
	if !result.Success {
		s.logger.Info("submission rejected: captcha failed", "provider_code", result.ErrorCode)
		return KindCaptchaFailed
	}

	normalized, kind := s.validator.Validate(req)
	if kind != "" {
		s.logger.Info("submission rejected: validation failed", "kind", kind)
		return kind
	}

	req = req.trimmed()
	sub := Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Phone:   normalized,
		Locale:  i18n.Parse(req.Locale),
	}

	if err := s.notifier.NotifySubmission(ctx, sub); err != nil {
		s.logger.Error("notification dispatch failed", "error", err)
		s.metrics.ObserveEmail("failed")
		return KindSendFailed
	}
	s.metrics.ObserveEmail("sent")

	s.logger.Info("submission accepted", "locale", sub.Locale)
	return ""
}
