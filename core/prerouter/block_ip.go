package prerouter

import (
	"net/http"

	"github.com/velotic/velo/core"
	"github.com/velotic/velo/topk"
)

// sketch dimensions balancing memory against detection accuracy; the
// per-deployment knobs (k, window, tick size) come from config.
const (
	sketchWidth = 1024
	sketchDepth = 3
)

// BlockIp is a circuit breaker against single-source request floods.
// It is not a nuanced rate limiter: a client that dominates the sliding
// window beyond the sketch threshold is cut off until the process
// restarts or the blocklist entry is removed.
type BlockIp struct {
	app    *core.App
	sketch *topk.TopKSketch
}

func NewBlockIp(app *core.App) *BlockIp {
	cfg := app.Config().BlockIp
	return &BlockIp{
		app:    app,
		sketch: topk.New(cfg.K, cfg.WindowSize, sketchWidth, sketchDepth, uint64(cfg.TickSize)),
	}
}

// Execute wraps the next handler with flood detection.
func (b *BlockIp) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !b.app.Config().BlockIp.Activated {
			next.ServeHTTP(w, r)
			return
		}

		ip := b.app.ClientIP(r)

		if b.app.BlockList().Contains(ip) {
			core.TooManyRequests(w)
			return
		}

		for _, offender := range b.sketch.ProcessTick(ip) {
			b.app.Logger().Warn("blocking ip after window threshold", "ip", offender)
			b.app.BlockList().Add(offender)
		}

		next.ServeHTTP(w, r)
	})
}
