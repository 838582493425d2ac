package prefilter

// TrackerConfig sets when a Tracker retires its prefilter.
type TrackerConfig struct {
	// CheckInterval is the number of candidates between two checks.
	CheckInterval uint64

	// MinEfficiency is the lowest acceptable share of candidates that
	// verify as matches, in [0, 1].
	MinEfficiency float64

	// WarmupPeriod is the number of candidates seen before the first check.
	WarmupPeriod uint64
}

// DefaultTrackerConfig retires a prefilter once fewer than one candidate in
// ten verifies, checked every 64 candidates after the first 128.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// TrackerStats is a snapshot of a Tracker's counters.
type TrackerStats struct {
	Candidates uint64
	Confirmed  uint64
	Retired    bool
}

// Efficiency returns Confirmed/Candidates, or 0 before any candidate.
func (s TrackerStats) Efficiency() float64 {
	if s.Candidates == 0 {
		return 0
	}
	return float64(s.Confirmed) / float64(s.Candidates)
}

// Tracker measures how many prefilter candidates verify as matches and
// retires the prefilter when that share falls below the configured
// efficiency. A needle whose prefix byte is common in the haystack, such as
// "61 ? 61" over text full of 'a', costs a prefilter call plus a failed
// verify at nearly every offset; scanning linearly is cheaper.
//
// Once retired, Find reports Retired for the rest of the search and the
// caller scans the remaining haystack itself. A Tracker holds per-search
// state and is not safe for concurrent use.
type Tracker struct {
	inner Prefilter
	cfg   TrackerConfig
	stats TrackerStats

	// candidates at the last efficiency check
	checkedAt uint64
}

// NewTracker wraps inner. It returns nil if inner is nil.
func NewTracker(inner Prefilter, cfg TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{inner: inner, cfg: cfg}
}

// Find implements Prefilter. After retirement it reports Retired without
// consulting the inner prefilter.
func (t *Tracker) Find(haystack []byte, start int) (int, Status) {
	if t.stats.Retired {
		return -1, Retired
	}
	pos, status := t.inner.Find(haystack, start)
	if status == Candidate {
		t.stats.Candidates++
		t.check()
	}
	return pos, status
}

// MinHaystackLen implements Prefilter.
func (t *Tracker) MinHaystackLen() int {
	return t.inner.MinHaystackLen()
}

// ConfirmMatch records that the last candidate verified.
func (t *Tracker) ConfirmMatch() {
	t.stats.Confirmed++
}

// Stats returns the current counters.
func (t *Tracker) Stats() TrackerStats {
	return t.stats
}

func (t *Tracker) check() {
	n := t.stats.Candidates
	if n < t.cfg.WarmupPeriod || n-t.checkedAt < t.cfg.CheckInterval {
		return
	}
	t.checkedAt = n
	if t.stats.Efficiency() < t.cfg.MinEfficiency {
		t.stats.Retired = true
	}
}
