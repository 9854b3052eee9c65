package frame

import (
	"context"
	"time"
)

// TickerPacer paces frames with a time.Ticker. Used by front ends without their own vsync.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer returns a pacer firing fps times per second. fps <= 0 means 60.
func NewTickerPacer(fps int) *TickerPacer {
	if fps <= 0 {
		fps = 60
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick or ctx is done.
func (p *TickerPacer) Wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-p.ticker.C:
		return true
	}
}

// Close stops the underlying ticker.
func (p *TickerPacer) Close() {
	p.ticker.Stop()
}

// PacerFunc adapts a plain function to Pacer.
type PacerFunc func(ctx context.Context) bool

// Wait calls f.
func (f PacerFunc) Wait(ctx context.Context) bool {
	return f(ctx)
}
