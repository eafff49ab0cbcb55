package prefilter

// Tracker decides, during one search, whether jumping between prefilter
// candidates still pays off.
//
// The idle matcher asks the tracker for the next candidate, tries to open a
// match there and, when the attempt fails, restarts one character later and
// asks again. Every jump is counted; every span the matcher closes is
// reported back through ConfirmMatch. When too few jumps end in a span the
// candidates are mostly noise (a common first byte, a short literal) and
// the tracker retires: Find returns -1 from then on and the matcher steps
// through the rest of the input one character at a time.
//
// A Tracker holds per-search state and must not be shared between searches.
//
//	tracker := prefilter.NewTracker(pf)
//	m := scan.NewMatcher(nodes, input, scan.WithTracker(tracker))
//	spans := m.Matches()
type Tracker struct {
	inner Prefilter

	jumps uint64
	spans uint64

	checkInterval uint64
	minEfficiency float64
	warmupPeriod  uint64
	lastCheck     uint64

	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how many jumps pass between two checks.
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the smallest acceptable share of jumps that end in a
	// closed span.
	// Default: 0.1
	MinEfficiency float64

	// WarmupPeriod is how many jumps happen before the first check.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a tracker with the default configuration.
// It returns nil for a nil prefilter.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker with a custom configuration.
// It returns nil for a nil prefilter.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate at or after start, or -1 when there is
// none or the tracker has retired. Callers tell the two apart with
// IsActive.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.jumps++
		if t.due() && t.tooNoisy() {
			t.active = false
		}
	}
	return pos
}

// ConfirmMatch records that the matcher closed a span.
func (t *Tracker) ConfirmMatch() {
	t.spans++
}

// IsActive reports whether the matcher should still jump between candidates.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns the jump count, the closed span count and whether the
// tracker is still active.
func (t *Tracker) Stats() (candidates, confirms uint64, active bool) {
	return t.jumps, t.spans, t.active
}

func (t *Tracker) due() bool {
	if t.jumps < t.warmupPeriod || t.jumps-t.lastCheck < t.checkInterval {
		return false
	}
	t.lastCheck = t.jumps
	return true
}

func (t *Tracker) tooNoisy() bool {
	return float64(t.spans) < t.minEfficiency*float64(t.jumps)
}
