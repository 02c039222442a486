package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/fivesolo/site-api/cmd/mainconfig"
	"github.com/fivesolo/site-api/internal/antispam"
	"github.com/fivesolo/site-api/internal/api/router"
	appconfig "github.com/fivesolo/site-api/internal/config"
	httpmiddleware "github.com/fivesolo/site-api/internal/http/middleware"
	"github.com/fivesolo/site-api/internal/i18n"
	"github.com/fivesolo/site-api/internal/notify"
	"github.com/fivesolo/site-api/internal/observability/metrics"
	"github.com/fivesolo/site-api/internal/phone"
	"github.com/fivesolo/site-api/internal/submission"
	"github.com/fivesolo/site-api/pkg/logging"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting site-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	submissionMetrics := metrics.NewSubmissionMetrics(nil)

	sender, providerName := buildEmailSender(context.Background(), cfg, logger)
	logger.Info("email backend selected", "provider", providerName)
	notifier := notify.NewContactNotifier(sender, cfg.ContactRecipient, logger)

	verifier := antispam.NewTurnstileVerifier(cfg.TurnstileSecretKey, logger)
	if cfg.TurnstileSecretKey == "" {
		logger.Warn("TURNSTILE_SECRET_KEY is not set; all captcha checks will fail")
	}

	service := submission.NewService(submission.ServiceConfig{
		Validator:          submission.NewValidator(phone.NewNormalizer(cfg.DefaultCountryCode)),
		Captcha:            verifier,
		Notifier:           notifier,
		Metrics:            submissionMetrics,
		Logger:             logger,
		MinSubmitDelay:     cfg.MinSubmitDelay,
		ExposeConfigErrors: !cfg.IsProduction(),
	})

	routerCfg := &router.Config{
		Logger:             logger,
		SubmissionHandler:  submission.NewHandler(service, logger),
		I18nHandler:        i18n.NewHandler(logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        buildRateLimiter(cfg, logger),
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// buildEmailSender picks the notification backend. EMAIL_PROVIDER forces a
// choice; "auto" prefers SendGrid, then SES, then the logging stub.
func buildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (notify.EmailSender, string) {
	useSendGrid := cfg.EmailProvider == "sendgrid" || (cfg.EmailProvider == "auto" && cfg.SendGridAPIKey != "")
	if useSendGrid {
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			return sender, "sendgrid"
		}
		logger.Warn("SENDGRID_API_KEY is not set; falling back to stub sender")
	}

	useSES := cfg.EmailProvider == "ses" || (cfg.EmailProvider == "auto" && cfg.SESFromEmail != "")
	if useSES {
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config; falling back to stub sender", "error", err)
		} else {
			sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
				FromEmail: cfg.SESFromEmail,
				FromName:  cfg.SESFromName,
			}, logger)
			if sender != nil {
				return sender, "ses"
			}
		}
	}

	return notify.NewStubEmailSender(logger), "stub"
}

// buildRateLimiter returns the Redis fixed-window limiter when REDIS_ADDR is
// set, otherwise the in-process token bucket.
func buildRateLimiter(cfg *appconfig.Config, logger *logging.Logger) httpmiddleware.Limiter {
	if cfg.RedisAddr == "" {
		return httpmiddleware.NewTokenBucketLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}

	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable at startup; limiter will fail open until it recovers",
			"addr", cfg.RedisAddr, "error", err)
	}

	return httpmiddleware.NewRedisLimiter(client, cfg.RateLimitBurst, time.Second, logger)
}
