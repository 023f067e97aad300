package dategrid

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates across the whole
// engine. All arithmetic happens on UTC calendar dates, never local
// instants, so DST switches cannot shift a column.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatDate renders t's calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// AddDays shifts a date string by n calendar days. Invalid input is
// returned unchanged; callers validate dates at the boundary.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// Nights returns the night count of the half-open range [checkIn, checkOut).
// A negative or zero result means the range is invalid.
func Nights(checkIn, checkOut string) int {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// Window is the visible date range of one grid view: Days consecutive
// calendar dates starting at Start, each mapped to a stable column index.
type Window struct {
	start time.Time
	days  int
}

// NewWindow builds a window of days columns beginning at start (YYYY-MM-DD).
func NewWindow(start string, days int) (Window, error) {
	if days <= 0 {
		return Window{}, fmt.Errorf("window length must be positive, got %d", days)
	}
	t, err := ParseDate(start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window start %q: %w", start, err)
	}
	return Window{start: t, days: days}, nil
}

// Start returns the first visible date.
func (w Window) Start() string { return FormatDate(w.start) }

// Days returns the number of visible columns.
func (w Window) Days() int { return w.days }

// Dates enumerates the visible dates in column order.
func (w Window) Dates() []string {
	out := make([]string, w.days)
	for i := 0; i < w.days; i++ {
		out[i] = FormatDate(w.start.AddDate(0, 0, i))
	}
	return out
}

// DateAt returns the date at column i, or false when i is out of range.
func (w Window) DateAt(i int) (string, bool) {
	if i < 0 || i >= w.days {
		return "", false
	}
	return FormatDate(w.start.AddDate(0, 0, i)), true
}

// Index maps a date back to its column, or false when it is not visible.
func (w Window) Index(date string) (int, bool) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	i := int(t.Sub(w.start).Hours() / 24)
	if i < 0 || i >= w.days {
		return 0, false
	}
	return i, true
}

// Contains reports whether date falls inside the visible range.
func (w Window) Contains(date string) bool {
	_, ok := w.Index(date)
	return ok
}

// ShiftDays moves the window by n days without touching its length.
func (w Window) ShiftDays(n int) Window {
	return Window{start: w.start.AddDate(0, 0, n), days: w.days}
}

// NextPage advances the window by one full page.
func (w Window) NextPage() Window { return w.ShiftDays(w.days) }

// PrevPage rewinds the window by one full page.
func (w Window) PrevPage() Window { return w.ShiftDays(-w.days) }

// Cell is the atomic addressing unit of the grid: one room on one date.
type Cell struct {
	Room string
	Date string
}

// CellID renders the stable key the presentation layer and interaction
// tests use to address this cell, e.g. "cell-102-2026-03-30".
func (c Cell) CellID() string {
	return fmt.Sprintf("cell-%s-%s", c.Room, c.Date)
}

// ParseCellID recovers a cell from its stable key. The date is the
// trailing 10 characters, so room numbers may contain dashes.
func ParseCellID(id string) (Cell, error) {
	rest, ok := strings.CutPrefix(id, "cell-")
	if !ok {
		return Cell{}, fmt.Errorf("invalid cell id %q", id)
	}
	if len(rest) < len(DateLayout)+2 {
		return Cell{}, fmt.Errorf("invalid cell id %q", id)
	}
	sep := len(rest) - len(DateLayout) - 1
	if rest[sep] != '-' {
		return Cell{}, fmt.Errorf("invalid cell id %q", id)
	}
	room, date := rest[:sep], rest[sep+1:]
	if room == "" {
		return Cell{}, fmt.Errorf("invalid cell id %q", id)
	}
	if _, err := ParseDate(date); err != nil {
		return Cell{}, fmt.Errorf("invalid cell id %q: %w", id, err)
	}
	return Cell{Room: room, Date: date}, nil
}
