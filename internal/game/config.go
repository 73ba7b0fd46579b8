// Package game is the pure engine: date-to-puzzle selection, guess
// evaluation, ranking and profile arithmetic. Nothing here touches storage
// or the clock; callers supply dates and persist results.
package game

import "time"

// DateLayout is the wire format for puzzle dates.
const DateLayout = "2006-01-02"

// Config is the engine configuration, passed explicitly into constructors
// so daily and archive variants can run side by side with independent
// settings.
type Config struct {
	// Epoch is the canonical day puzzle ordinal 1 was shown on.
	Epoch time.Time

	// MaxGuesses bounds the guesses in one session.
	MaxGuesses int

	// TZ is the canonical timezone whose midnight rolls the puzzle over.
	TZ *time.Location
}

// NewConfig parses an epoch date (YYYY-MM-DD) and a timezone offset in
// minutes east of UTC into an engine Config.
func NewConfig(epoch string, maxGuesses, tzOffsetMin int) (Config, error) {
	if maxGuesses < 1 {
		return Config{}, NewConfigurationError("max guesses must be positive, got %d", maxGuesses)
	}
	tz := time.FixedZone("puzzle-day", tzOffsetMin*60)
	t, err := time.ParseInLocation(DateLayout, epoch, tz)
	if err != nil {
		return Config{}, NewConfigurationError("bad epoch date %q: %v", epoch, err)
	}
	return Config{Epoch: t, MaxGuesses: maxGuesses, TZ: tz}, nil
}

// Normalize truncates t to midnight of its canonical day. All date
// arithmetic goes through this so every client agrees on which puzzle is
// today's.
func (c Config) Normalize(t time.Time) time.Time {
	year, month, day := t.In(c.TZ).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, c.TZ)
}

// DateString formats t's canonical day using DateLayout.
func (c Config) DateString(t time.Time) string {
	return c.Normalize(t).Format(DateLayout)
}

// DateOfOrdinal returns the canonical date string of the day carrying the
// given ordinal. Ordinal 1 is the epoch day itself.
func (c Config) DateOfOrdinal(ordinal int) string {
	return c.Normalize(c.Epoch).AddDate(0, 0, ordinal-1).Format(DateLayout)
}
