// Package ui holds presentation helpers: transient visual effects and
// clock formatting.
package ui

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// EffectKind names a visual transition.
type EffectKind int

const (
	// EffectGenie shrinks a window into its dock entry.
	EffectGenie EffectKind = iota
	// EffectRestore grows a window out of its dock entry.
	EffectRestore
	// EffectDockBounce draws attention to a dock entry.
	EffectDockBounce
	// EffectPageSnap slides the springboard to the committed page.
	EffectPageSnap
)

func (k EffectKind) String() string {
	switch k {
	case EffectGenie:
		return "genie"
	case EffectRestore:
		return "restore"
	case EffectDockBounce:
		return "dock-bounce"
	case EffectPageSnap:
		return "page-snap"
	}
	return "unknown"
}

// Animation is one running effect. It never owns state: the window manager
// has already committed the transition the effect depicts.
type Animation struct {
	ID        string
	Kind      EffectKind
	Target    string
	StartTime time.Time
	Duration  time.Duration
	Progress  float64
	Complete  bool
}

// Eased returns the progress with an ease-out cubic curve applied.
func (a *Animation) Eased() float64 {
	return 1 - math.Pow(1-a.Progress, 3)
}

// Tracker runs effects. Starting an effect on a target supersedes any
// effect already running on it.
type Tracker struct {
	effects  []*Animation
	duration func(EffectKind) time.Duration
	now      func() time.Time
}

// NewTracker creates a tracker. duration picks the length per kind; a zero
// length completes the effect immediately.
func NewTracker(duration func(EffectKind) time.Duration) *Tracker {
	return &Tracker{duration: duration, now: time.Now}
}

// SetClock replaces the time source.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// Start begins an effect on target and returns it.
func (t *Tracker) Start(kind EffectKind, target string) *Animation {
	t.Cancel(target)
	a := &Animation{
		ID:        uuid.New().String(),
		Kind:      kind,
		Target:    target,
		StartTime: t.now(),
	}
	if t.duration != nil {
		a.Duration = t.duration(kind)
	}
	if a.Duration <= 0 {
		a.Progress = 1
		a.Complete = true
		return a
	}
	t.effects = append(t.effects, a)
	return a
}

// Cancel drops any effect running on target.
func (t *Tracker) Cancel(target string) {
	kept := t.effects[:0]
	for _, a := range t.effects {
		if a.Target != target {
			kept = append(kept, a)
		}
	}
	clear(t.effects[len(kept):])
	t.effects = kept
}

// Advance updates progress and drops finished effects. It returns true
// while effects remain.
func (t *Tracker) Advance() bool {
	now := t.now()
	kept := t.effects[:0]
	for _, a := range t.effects {
		elapsed := now.Sub(a.StartTime)
		a.Progress = math.Min(1, float64(elapsed)/float64(a.Duration))
		if a.Progress >= 1 {
			a.Complete = true
			continue
		}
		kept = append(kept, a)
	}
	clear(t.effects[len(kept):])
	t.effects = kept
	return len(t.effects) > 0
}

// For returns the running effect on target, or nil.
func (t *Tracker) For(target string) *Animation {
	for _, a := range t.effects {
		if a.Target == target {
			return a
		}
	}
	return nil
}

// Active returns the running effects.
func (t *Tracker) Active() []*Animation {
	return t.effects
}

// HasActive reports whether any effect is running.
func (t *Tracker) HasActive() bool {
	return len(t.effects) > 0
}
