// Package scrollspy decides which named page section is currently in view,
// so navigation can highlight the matching entry. Geometry comes from an
// injected measurement provider rather than a real viewport, which keeps
// the logic deterministic under test and lets the HTTP layer answer from
// client-measured snapshots.
package scrollspy

import "sync"

// NearTopThreshold is the scroll position below which the first tracked
// section counts as active even before its measured range starts. Without
// it the page briefly has no active section on load.
const NearTopThreshold = 100

// Geometry supplies section measurements and the current scroll position.
// A section with no measurable element reports ok=false and is skipped.
type Geometry interface {
	SectionRect(id string) (top, height float64, ok bool)
	ScrollY() float64
}

// EventSource delivers scroll events. Subscribe registers a handler and
// returns its cancel function.
type EventSource interface {
	Subscribe(fn func()) (cancel func())
}

// Track computes the active section for a single measurement: the last
// listed section whose [top, top+height) range contains scrollY+offset,
// falling back to the first section near the top of the page. Returns ""
// when no section qualifies.
func Track(geo Geometry, sectionIDs []string, offset float64) string {
	return compute(geo, sectionIDs, offset, "")
}

func compute(geo Geometry, sectionIDs []string, offset float64, prev string) string {
	if len(sectionIDs) == 0 {
		return ""
	}
	pos := geo.ScrollY() + offset

	// Later sections win when ranges overlap or boundaries coincide.
	for i := len(sectionIDs) - 1; i >= 0; i-- {
		top, height, ok := geo.SectionRect(sectionIDs[i])
		if !ok {
			continue
		}
		if pos >= top && pos < top+height {
			return sectionIDs[i]
		}
	}

	if pos < NearTopThreshold {
		return sectionIDs[0]
	}
	// Nothing matched past the threshold: keep the previous answer rather
	// than flashing back to empty between section boundaries.
	return prev
}

// Tracker follows scroll events for a section list. It has two states:
// detached (no sections, no listener, reports "") and attached (one
// listener registered, reports a best-effort active section).
type Tracker struct {
	mu       sync.Mutex
	geo      Geometry
	events   EventSource
	sections []string
	offset   float64
	active   string
	cancel   func()
}

// NewTracker returns a detached tracker over the given providers.
func NewTracker(geo Geometry, events EventSource) *Tracker {
	return &Tracker{geo: geo, events: events}
}

// Attach starts tracking a section list. Any existing listener is
// cancelled first, so re-attaching with a changed set never leaks a
// handler. An empty list detaches and the active section becomes "".
// The active section is recomputed immediately, before the first event.
func (t *Tracker) Attach(sectionIDs []string, offset float64) {
	t.Detach()
	t.mu.Lock()
	if len(sectionIDs) == 0 {
		t.sections, t.offset, t.active = nil, 0, ""
		t.mu.Unlock()
		return
	}
	t.sections = append([]string(nil), sectionIDs...)
	t.offset = offset
	t.cancel = t.events.Subscribe(t.onScroll)
	t.mu.Unlock()
	t.onScroll()
}

// Detach cancels the scroll listener unconditionally and returns the
// tracker to the detached state, where Active reports "".
func (t *Tracker) Detach() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.sections = nil
	t.active = ""
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Active returns the current active section id, or "" when none
// qualifies.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Attached reports whether a scroll listener is registered.
func (t *Tracker) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Tracker) onScroll() {
	t.mu.Lock()
	sections := t.sections
	offset := t.offset
	prev := t.active
	t.mu.Unlock()

	active := compute(t.geo, sections, offset, prev)

	t.mu.Lock()
	t.active = active
	t.mu.Unlock()
}
