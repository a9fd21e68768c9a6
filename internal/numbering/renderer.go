package numbering

import (
	"strconv"

	"github.com/nerdneilsfield/go-docx-styler/internal/profile"
)

// maxLevel is the number of auto-numbered heading levels.
const maxLevel = 4

// Renderer walks heading occurrences in document order and produces
// their literal numbering strings. It is an explicit state object:
// counters live here, not in package globals, so each document walk
// gets a fresh, isolated render.
type Renderer struct {
	configs  [maxLevel + 1]*profile.NumberingConfig // 1-based
	counters [maxLevel + 1]int
}

// NewRenderer builds a renderer from a profile's heading numbering
// configurations. All counters start at zero.
func NewRenderer(styles *profile.StyleSet) *Renderer {
	r := &Renderer{}
	for _, key := range profile.HeadingKeys {
		cfg, _ := styles.Get(key)
		r.configs[key.HeadingLevel()] = cfg.Numbering
	}
	return r
}

// Advance records a heading occurrence at level (1..4) and returns the
// rendered numbering text for it, without trailing separator. The
// counter at level increments; all deeper counters reset, so a new
// level-1 heading restarts level-2/3/4 numbering. The returned string
// is empty when numbering is disabled for the level.
func (r *Renderer) Advance(level int) string {
	if level < 1 || level > maxLevel {
		return ""
	}

	r.counters[level]++
	for deeper := level + 1; deeper <= maxLevel; deeper++ {
		r.counters[deeper] = 0
	}

	cfg := r.configs[level]
	if cfg == nil || !cfg.Enabled {
		return ""
	}

	display := cfg.Prefix + FormatCounter(r.counters[level], cfg.CounterType) + cfg.Suffix
	if cfg.Cascade && level > 1 {
		return r.seed(level-1) + cfg.Separator + display
	}
	return display
}

// seed computes the cascade string a level passes down to its children.
// Per the display/seed duality, the level's own contribution is always
// the arabic digit string of its counter, never its display alphabet
// and never its prefix/suffix: a level-1 "第一章" seeds children as "1".
// A zero counter (orphaned sub-level, or a parent that never occurred)
// seeds as an implicit first occurrence, never "0".
func (r *Renderer) seed(level int) string {
	n := r.counters[level]
	if n < 1 {
		n = 1
	}
	own := strconv.Itoa(n)

	cfg := r.configs[level]
	if cfg != nil && cfg.Cascade && level > 1 {
		return r.seed(level-1) + cfg.Separator + own
	}
	return own
}

// Preview renders the numbering string a heading level would receive if
// every counter stood at 1. Pure: used by profile editors to show
// "1.1"-style previews with no document in hand.
func Preview(styles *profile.StyleSet, key profile.StyleKey) string {
	level := key.HeadingLevel()
	if level == 0 {
		return ""
	}

	r := NewRenderer(styles)
	for l := 1; l <= maxLevel; l++ {
		r.counters[l] = 1
	}

	cfg := r.configs[level]
	if cfg == nil || !cfg.Enabled {
		return ""
	}

	display := cfg.Prefix + FormatCounter(1, cfg.CounterType) + cfg.Suffix
	if cfg.Cascade && level > 1 {
		return r.seed(level-1) + cfg.Separator + display
	}
	return display
}
