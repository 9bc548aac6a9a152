package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Refresher periodically re-runs the default stats query so the cache and
// archive stay warm between dashboard visits. The in-flight guard inside
// StatsService means a tick never races an interactive query for the same
// window.
type Refresher struct {
	svc       StatsServiceInterface
	interval  time.Duration
	stop      chan struct{}
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRefresher creates a new Refresher
func NewRefresher(svc StatsServiceInterface, interval time.Duration) *Refresher {
	return &Refresher{
		svc:      svc,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. A non-positive interval disables the
// loop; Start and Stop remain safe to call either way.
func (r *Refresher) Start() {
	r.startOnce.Do(func() {
		if r.interval <= 0 {
			log.Info().Msg("Background refresh disabled")
			close(r.done)
			return
		}
		log.Info().Dur("interval", r.interval).Msg("Background refresh started")
		go r.loop()
	})
}

// Stop halts the loop and waits for an in-progress refresh to finish.
// Stop must be called after Start; calling it again is a no-op.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	<-r.done
}

func (r *Refresher) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	if _, err := r.svc.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("Background refresh failed")
		return
	}
	log.Debug().Msg("Background refresh completed")
}
