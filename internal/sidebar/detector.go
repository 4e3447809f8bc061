package sidebar

import (
	"sync"
	"sync/atomic"
)

// Detector resolves the client platform once, in the background.
// Until the probe returns, Platform reports PlatformMac.
type Detector struct {
	once     sync.Once
	platform atomic.Int32
	done     chan struct{}
}

// NewDetector returns a detector holding the default platform.
func NewDetector() *Detector {
	return &Detector{done: make(chan struct{})}
}

// Start runs probe in its own goroutine. Only the first call has any effect.
// There is no cancellation and no timeout; a probe that never returns leaves the default in place.
func (d *Detector) Start(probe func() string) {
	d.once.Do(func() {
		go func() {
			d.platform.Store(int32(ClassifyPlatform(probe())))
			close(d.done)
		}()
	})
}

// Platform returns the detected platform or the default while detection is pending.
func (d *Detector) Platform() Platform {
	return Platform(d.platform.Load())
}

// Done is closed once the probe finished.
func (d *Detector) Done() <-chan struct{} {
	return d.done
}
