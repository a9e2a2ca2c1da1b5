package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/cofound/pkg/jwtx"
)

const keyRefreshTimeout = 15 * time.Second

// KeyRefreshService periodically reloads the token verification keys from
// their source so the issuer can rotate keys without a restart.
type KeyRefreshService struct {
	Source   jwtx.JWKSSource
	Keys     *jwtx.KeySet
	Logger   *slog.Logger
	Interval time.Duration

	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewKeyRefreshService defaults the interval to 15 minutes.
func NewKeyRefreshService(src jwtx.JWKSSource, keys *jwtx.KeySet, logger *slog.Logger, interval time.Duration) *KeyRefreshService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &KeyRefreshService{
		Source:   src,
		Keys:     keys,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Refresh loads the key set once. On failure the previous keys stay in use.
func (s *KeyRefreshService) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, keyRefreshTimeout)
	defer cancel()

	set, err := s.Source.Load(ctx)
	if err != nil {
		return err
	}
	if err := s.Keys.Replace(set); err != nil {
		return err
	}
	s.Logger.Debug("verification keys refreshed", "keys", len(set.Keys))
	return nil
}

// Start runs the refresh loop in the background until Stop is called.
func (s *KeyRefreshService) Start() {
	s.started = true
	go s.run()
	s.Logger.Info("key refresh service started", "interval", s.Interval)
}

// Stop blocks until the loop has exited. It is a no-op if Start was never
// called.
func (s *KeyRefreshService) Stop() {
	if !s.started {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("key refresh service stopped")
}

func (s *KeyRefreshService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Refresh(context.Background()); err != nil {
				s.Logger.Error("failed to refresh verification keys", "error", err)
			}
		case <-s.stopCh:
			return
		}
	}
}
