package worker

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// KeepaliveWorker periodically GETs a URL so free-tier hosting does not idle
// the process out. Failures are logged and never surfaced anywhere else.
type KeepaliveWorker struct {
	url      string
	interval time.Duration
	// startDelay postpones the first ping so the HTTP server is listening
	// before we hit our own /health endpoint.
	startDelay time.Duration
	client     *http.Client
	log        zerolog.Logger
}

// NewKeepaliveWorker creates a new KeepaliveWorker.
func NewKeepaliveWorker(url string, interval time.Duration, log zerolog.Logger) *KeepaliveWorker {
	return &KeepaliveWorker{
		url:        url,
		interval:   interval,
		startDelay: 5 * time.Second,
		client:     &http.Client{Timeout: 30 * time.Second},
		log:        log.With().Str("component", "keepalive_worker").Logger(),
	}
}

// Start begins the ping loop. Call in a goroutine; returns when ctx is done.
func (w *KeepaliveWorker) Start(ctx context.Context) {
	w.log.Info().
		Str("url", w.url).
		Dur("interval", w.interval).
		Msg("Keepalive worker started")

	select {
	case <-ctx.Done():
		return
	case <-time.After(w.startDelay):
		w.ping(ctx)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Keepalive worker stopped")
			return
		case <-ticker.C:
			w.ping(ctx)
		}
	}
}

func (w *KeepaliveWorker) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.url, nil)
	if err != nil {
		w.log.Error().Err(err).Msg("keepalive request build failed")
		return
	}

	resp, err := w.client.Do(req)
	if err != nil {
		w.log.Warn().Err(err).Str("url", w.url).Msg("keepalive ping failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		w.log.Warn().
			Str("url", w.url).
			Int("status", resp.StatusCode).
			Msg("keepalive ping failed")
		return
	}

	w.log.Debug().Str("url", w.url).Msg("keepalive ping ok")
}
