package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"guardpost/internal/config"
	"guardpost/internal/domain"
	"guardpost/internal/redis"
	"guardpost/pkg/e"
)

// AlertSender drains the Redis alert queue and posts each overdue alert to
// the configured webhook with bounded retries.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.AlertsConfig
	queue  *redis.AlertQueue
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.AlertsConfig, q *redis.AlertQueue) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alert sender started", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		alert, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("alert queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending overdue alert",
			slog.String("checkpoint_id", alert.CheckpointID.String()),
			slog.Float64("minutes_overdue", alert.MinutesOverdue),
		)
		s.sendWithRetry(ctx, alert)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, alert domain.OverdueAlert) {
	const maxRetries = 3

	body, err := json.Marshal(alert)
	if err != nil {
		s.logger.Error("marshal alert failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("checkpoint_id", alert.CheckpointID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	s.logger.Error("alert dropped after retries",
		slog.String("checkpoint_id", alert.CheckpointID.String()),
	)
}
