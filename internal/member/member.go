// Package member checks member existence against the member service.
package member

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/internal/domain"
	"github.com/GlebRadaev/pointledger/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Directory struct {
	url           string
	client        clients.HTTPClientI
	retryInterval time.Duration
}

func New(address string, client clients.HTTPClientI) *Directory {
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	return &Directory{
		url:           strings.TrimRight(address, "/"),
		client:        client,
		retryInterval: retryInterval,
	}
}

// MemberExists returns nil for a known member and a wrapped
// domain.ErrMemberNotFound for an unknown one. Transport failures and 5xx
// answers are retried, 429 honours Retry-After.
func (d *Directory) MemberExists(ctx context.Context, memberID int64) error {
	url := d.url + "/api/members/" + strconv.FormatInt(memberID, 10)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, _, headers, err := d.client.Get(ctx, url, nil)
		var wait time.Duration
		switch {
		case err != nil:
			lastErr = err
			wait = d.retryInterval * time.Duration(attempt)
		case statusCode == http.StatusOK, statusCode == http.StatusNoContent:
			return nil
		case statusCode == http.StatusNotFound:
			return fmt.Errorf("%w: id %d", domain.ErrMemberNotFound, memberID)
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("member service rate limited")
			wait = d.retryAfter(headers, attempt)
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("member service answered %d", statusCode)
			wait = d.retryInterval * time.Duration(attempt)
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int64("member_id", memberID))
			return fmt.Errorf("unexpected member service status %d", statusCode)
		}

		if attempt == maxRetries {
			break
		}
		zap.L().Warn("Member lookup failed, retrying", zap.Int64("member_id", memberID),
			zap.Int("attempt", attempt), zap.Duration("retryAfter", wait), zap.Error(lastErr))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("failed to look up member %d after %d attempts: %w", memberID, maxRetries, lastErr)
}

func (d *Directory) retryAfter(headers http.Header, attempt int) time.Duration {
	wait := d.retryInterval * time.Duration(attempt)
	if header := headers.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			wait = time.Duration(seconds) * time.Second
		}
	}
	return wait
}
