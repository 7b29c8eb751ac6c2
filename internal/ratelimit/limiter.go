// Package ratelimit provides per-client sliding-window admission control
// with a penalty block once the window limit is hit.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per client identity. A client that
// fills its window gets blocked for the block duration; calls during the
// block do not consume window slots.
type Limiter struct {
	window time.Duration
	max    int
	block  time.Duration

	mu      sync.RWMutex
	clients map[string]*clientState

	now func() time.Time

	janitor *time.Ticker
	stop    chan struct{}
}

// clientState is the mutable window of one identity. Its own mutex keeps
// concurrent requests from the same client serialized without making
// different clients contend.
type clientState struct {
	mu           sync.Mutex
	requests     []time.Time
	blockedUntil time.Time
	lastSeen     time.Time
}

// NewLimiter creates a limiter and starts a janitor that drops client
// entries idle longer than window+block, so the table stays bounded.
func NewLimiter(window time.Duration, max int, block time.Duration) *Limiter {
	l := &Limiter{
		window:  window,
		max:     max,
		block:   block,
		clients: make(map[string]*clientState),
		now:     time.Now,
		janitor: time.NewTicker(window + block),
		stop:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Admit reports whether a request from clientID may proceed. When it may
// not, retryAfter says how long the client should wait.
func (l *Limiter) Admit(clientID string) (allowed bool, retryAfter time.Duration) {
	now := l.now()
	st := l.state(clientID)

	st.mu.Lock()
	defer st.mu.Unlock()

	st.lastSeen = now

	// Drop timestamps that fell out of the window.
	cutoff := now.Add(-l.window)
	kept := st.requests[:0]
	for _, ts := range st.requests {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	st.requests = kept

	if now.Before(st.blockedUntil) {
		return false, st.blockedUntil.Sub(now)
	}

	if len(st.requests) >= l.max {
		st.blockedUntil = now.Add(l.block)
		return false, l.block
	}

	st.requests = append(st.requests, now)
	return true, 0
}

func (l *Limiter) state(clientID string) *clientState {
	l.mu.RLock()
	st, ok := l.clients[clientID]
	l.mu.RUnlock()
	if ok {
		return st
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if st, ok := l.clients[clientID]; ok {
		return st
	}
	st = &clientState{}
	l.clients[clientID] = st
	return st
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.janitor.C:
			l.prune()
		case <-l.stop:
			return
		}
	}
}

// prune removes clients not seen for a full window plus block period.
// Such entries can no longer affect an admission decision.
func (l *Limiter) prune() {
	cutoff := l.now().Add(-(l.window + l.block))

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, st := range l.clients {
		st.mu.Lock()
		stale := st.lastSeen.Before(cutoff) && st.blockedUntil.Before(cutoff)
		st.mu.Unlock()
		if stale {
			delete(l.clients, id)
		}
	}
}

// Stop halts the janitor goroutine.
func (l *Limiter) Stop() {
	l.janitor.Stop()
	close(l.stop)
}
