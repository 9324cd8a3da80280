package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sentinelhq/sentinel/internal/feed"
)

const defaultFeedInterval = 2500 * time.Millisecond

// Sink receives each generated entry.
type Sink interface {
	Push(feed.Entry)
}

// tickerFunc builds the tick source; tests swap it for a manual channel.
type tickerFunc func(time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Scheduler fires the mock feed at a fixed cadence.
type Scheduler struct {
	gen       *feed.Generator
	sink      Sink
	interval  time.Duration
	logger    *slog.Logger
	newTicker tickerFunc
}

// NewScheduler wires a generator to a sink. A non-positive interval uses the
// 2.5s default and a nil logger discards output.
func NewScheduler(gen *feed.Generator, sink Sink, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultFeedInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		gen:       gen,
		sink:      sink,
		interval:  interval,
		logger:    logger,
		newTicker: realTicker,
	}
}

// Interval returns the firing period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start launches the feed goroutine and returns its stop function. stop
// cancels the goroutine and waits for it to exit, so no entry is pushed once
// it returns. Calling stop again is a no-op.
func (s *Scheduler) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	ticks, stopTicker := s.newTicker(s.interval)
	done := make(chan struct{})

	s.logger.Info("feed scheduler started", "interval", s.interval)
	go func() {
		defer close(done)
		defer stopTicker()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticks:
				s.fire(now)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
			s.logger.Info("feed scheduler stopped")
		})
	}
}

func (s *Scheduler) fire(now time.Time) {
	entry := s.gen.Next(now)
	s.sink.Push(entry)
	s.logger.Debug("feed entry", "id", entry.ID, "category", entry.Category, "message", entry.Message)
}
