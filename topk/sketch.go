package topk

import (
	"sync"

	"github.com/keilerkonzept/topk/sliding"
)

const (
	// thresholdPercent of a window's request capacity a single key must
	// exceed before it is reported.
	thresholdPercent = 80
)

// TopKSketch provides thread-safe access to a sliding top-k sketch and
// manages ticking. One instance observes one stream of keys, typically
// client IPs.
type TopKSketch struct {
	mu        sync.Mutex
	sketch    *sliding.Sketch
	tickSize  uint64 // number of requests per tick
	tickReq   uint64 // requests processed since last tick
	tickCount uint64 // total ticks processed
	threshold int    // precomputed report threshold
}

// New creates a sketch with the given top-k parameters. tickSize is how
// many observed keys advance the window by one tick.
func New(k, windowSize, width, depth int, tickSize uint64) *TopKSketch {
	instance := sliding.New(k, windowSize,
		sliding.WithWidth(width),
		sliding.WithDepth(depth),
	)

	if tickSize == 0 {
		tickSize = 1000
	}

	windowCapacity := uint64(windowSize) * tickSize
	threshold := int((windowCapacity * thresholdPercent) / 100)

	return &TopKSketch{
		sketch:    instance,
		tickSize:  tickSize,
		threshold: threshold,
	}
}

// ProcessTick counts one observation of key. When the accumulated
// observations complete a tick, the window advances and the keys whose
// windowed count exceeds the threshold are returned.
func (cs *TopKSketch) ProcessTick(key string) []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.sketch.Incr(key)
	cs.tickReq++

	if cs.tickReq < cs.tickSize {
		return nil
	}

	cs.sketch.Tick()
	cs.tickCount++
	cs.tickReq = 0

	var offenders []string
	for _, item := range cs.sketch.SortedSlice() {
		if int(item.Count) > cs.threshold {
			offenders = append(offenders, item.Item)
		}
	}
	return offenders
}

// Ticks returns the number of completed ticks, for instrumentation.
func (cs *TopKSketch) Ticks() uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.tickCount
}
