// Package calendar holds the pure core: the day-grid builder, the per-day
// entry classifier and the filter engine. Nothing in here touches storage or
// the network; every function is a deterministic mapping and safe to call
// repeatedly.
package calendar

import "time"

// DayFormat is the only date representation in the system.
const DayFormat = "2006-01-02"

type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

// DayCell is one slot of a month or week grid.
type DayCell struct {
	Date    time.Time `json:"-"`
	Day     string    `json:"day"`
	Number  int       `json:"number"`
	Current bool      `json:"current"`
	Weekend bool      `json:"weekend"`
}

// Noon pins a date to local noon. All internal date arithmetic runs on noon
// anchors so DST transitions can never shift a value across midnight.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// ParseDay parses a YYYY-MM-DD string into its local-noon instant.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return Noon(t), nil
}

// FormatDay renders the local calendar day as YYYY-MM-DD. It deliberately
// never converts to UTC: a UTC round-trip moves the date across midnight in
// some zones.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

func newCell(t time.Time, current bool) DayCell {
	wd := t.Weekday()
	return DayCell{
		Date:    t,
		Day:     FormatDay(t),
		Number:  t.Day(),
		Current: current,
		Weekend: wd == time.Sunday || wd == time.Saturday,
	}
}

// MonthGrid lays out the month containing ref: a Monday-start leading run of
// previous-month days (marked not current), then every day of the month. The
// grid is not padded at the tail, so its length is offset + days-in-month.
func MonthGrid(ref time.Time) []DayCell {
	ref = Noon(ref)
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 12, 0, 0, 0, loc)
	last := time.Date(ref.Year(), ref.Month()+1, 0, 12, 0, 0, 0, loc)

	offset := int(first.Weekday()) - 1
	if offset == -1 {
		offset = 6 // Sunday
	}

	cells := make([]DayCell, 0, offset+last.Day())
	for i := offset; i > 0; i-- {
		cells = append(cells, newCell(time.Date(ref.Year(), ref.Month(), 1-i, 12, 0, 0, 0, loc), false))
	}
	for d := 1; d <= last.Day(); d++ {
		cells = append(cells, newCell(time.Date(ref.Year(), ref.Month(), d, 12, 0, 0, 0, loc), true))
	}
	return cells
}

// WeekGrid lays out the Monday-started week containing ref. A Sunday ref
// counts as day 7 of the previous week.
func WeekGrid(ref time.Time) []DayCell {
	ref = Noon(ref)
	back := int(ref.Weekday()) - 1
	if back == -1 {
		back = 6
	}
	monday := ref.AddDate(0, 0, -back)

	cells := make([]DayCell, 0, 7)
	for i := 0; i < 7; i++ {
		cells = append(cells, newCell(monday.AddDate(0, 0, i), true))
	}
	return cells
}

// Grid dispatches on the view mode; anything but week gets the month layout.
func Grid(ref time.Time, view View) []DayCell {
	if view == ViewWeek {
		return WeekGrid(ref)
	}
	return MonthGrid(ref)
}

// Navigate shifts the reference date by step periods: months in month view,
// weeks in week view.
func Navigate(ref time.Time, view View, step int) time.Time {
	if view == ViewWeek {
		return Noon(ref.AddDate(0, 0, 7*step))
	}
	return Noon(ref.AddDate(0, step, 0))
}
