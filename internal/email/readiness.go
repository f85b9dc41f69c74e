package email

import "sync/atomic"

// Readiness records the outcome of the one-time startup verification.
// Written once by the startup hook and read by the health endpoint, which
// may race with a request arriving before the hook finishes.
type Readiness struct {
	ready atomic.Bool
}

func NewReadiness() *Readiness {
	return &Readiness{}
}

func (r *Readiness) Set(ok bool) {
	r.ready.Store(ok)
}

func (r *Readiness) Ready() bool {
	return r.ready.Load()
}
