package game

import "time"

// Selection is the resolved puzzle for one calendar date.
type Selection struct {
	PuzzleID   int
	Ordinal    int
	Date       string
	Overridden bool
}

// Selector maps calendar dates to puzzle identities. Deterministic: the
// same date always yields the same selection, and the ordinal increases by
// exactly one per canonical day.
type Selector struct {
	cfg Config
}

func NewSelector(cfg Config) *Selector {
	return &Selector{cfg: cfg}
}

// Select resolves the puzzle shown on date. A non-nil override pins the
// puzzle id for that date; the ordinal still follows the epoch rule, so
// overrides never renumber the displayed puzzle count. Dates before the
// epoch are a configuration error, never a silent wrap.
func (s *Selector) Select(date time.Time, catalogSize int, override *int) (Selection, error) {
	if catalogSize < 1 {
		return Selection{}, NewNoPuzzlesError()
	}

	day := s.cfg.Normalize(date)
	epoch := s.cfg.Normalize(s.cfg.Epoch)
	days := int(day.Sub(epoch).Hours() / 24)
	if days < 0 {
		return Selection{}, NewConfigurationError("date %s precedes epoch %s",
			day.Format(DateLayout), epoch.Format(DateLayout))
	}

	ordinal := days + 1
	sel := Selection{
		PuzzleID: ((ordinal - 1) % catalogSize) + 1,
		Ordinal:  ordinal,
		Date:     day.Format(DateLayout),
	}
	if override != nil && *override >= 1 {
		sel.PuzzleID = *override
		sel.Overridden = true
	}
	return sel, nil
}

// Reachable reports whether the default rotation has already shown puzzle
// id on or before the day with the given ordinal. Archive access is limited
// to reachable ids so future puzzles stay hidden.
func (s *Selector) Reachable(id, catalogSize, todayOrdinal int) bool {
	if id < 1 || id > catalogSize {
		return false
	}
	return todayOrdinal >= catalogSize || id <= todayOrdinal
}

// LastShown returns the ordinal of the most recent day on or before
// todayOrdinal on which the default rotation showed puzzle id. ok is false
// when the rotation has not reached that id yet.
func (s *Selector) LastShown(id, catalogSize, todayOrdinal int) (int, bool) {
	if !s.Reachable(id, catalogSize, todayOrdinal) {
		return 0, false
	}
	todayID := ((todayOrdinal - 1) % catalogSize) + 1
	ordinal := todayOrdinal - (todayID - id)
	if id > todayID {
		ordinal -= catalogSize
	}
	return ordinal, true
}
