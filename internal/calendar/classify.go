package calendar

import (
	"fmt"

	"catedra-calendar/internal/model"
	"catedra-calendar/internal/roster"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Busyness levels per entry count. Thresholds are fixed product rules.
type Busyness string

const (
	BusyNormal Busyness = "normal"
	Busy       Busyness = "busy"
	VeryBusy   Busyness = "very-busy"

	busyAt     = 4
	veryBusyAt = 7
)

func ClassifyBusyness(entries int) Busyness {
	switch {
	case entries >= veryBusyAt:
		return VeryBusy
	case entries >= busyAt:
		return Busy
	default:
		return BusyNormal
	}
}

// Badge styles. Absence beats everything, plan renders outlined, solid is the
// default for diario, vacaciones and any tag we do not recognize.
type BadgeStyle string

const (
	BadgeSolid   BadgeStyle = "solid"
	BadgeOutline BadgeStyle = "outline"
	BadgeAbsence BadgeStyle = "absence"
)

// absenceBase is the dark overlay behind an absence badge.
const absenceBase = "#111827"

// Band is one stripe of a diagonal participant gradient. From and To are
// percentages; bands are equal width in participant order.
type Band struct {
	Color string  `json:"color"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
}

// Dot is a small per-entry indicator; a cell shows at most MaxDots of them.
type Dot struct {
	EntryID int    `json:"entry_id"`
	Bands   []Band `json:"bands"`
	Ring    string `json:"ring,omitempty"`
	Absence bool   `json:"absence,omitempty"`
	Primary string `json:"primary"`
}

// Badge is the render intent for one text chip; at most MaxBadges per cell.
type Badge struct {
	EntryID   int        `json:"entry_id"`
	Style     BadgeStyle `json:"style"`
	Label     string     `json:"label"`
	Bands     []Band     `json:"bands"`
	Primary   string     `json:"primary"`
	Composite string     `json:"composite"`
	Multi     bool       `json:"multi"`
	Completed bool       `json:"completed"`
}

// DayRender is everything a UI needs to draw one day cell.
type DayRender struct {
	Day      string   `json:"day"`
	Busyness Busyness `json:"busyness"`
	Dots     []Dot    `json:"dots"`
	Badges   []Badge  `json:"badges"`
	Overflow int      `json:"overflow"`
	Total    int      `json:"total"`
}

// Display truncation limits.
const (
	MaxDots   = 10
	MaxBadges = 5
)

// Bands splits the 0..100 range into one equal stripe per participant color,
// in participant order. A single participant degenerates to one full-width
// band, i.e. a flat color.
func Bands(colors []string) []Band {
	step := 100.0 / float64(len(colors))
	bands := make([]Band, len(colors))
	for i, c := range colors {
		bands[i] = Band{Color: c, From: step * float64(i), To: step * float64(i+1)}
	}
	return bands
}

// composite folds the band colors into one flat hex by averaging in Lab
// space. Clients that cannot draw gradients (terminals, e-ink panels) use it
// instead of the bands.
func composite(colors []string) string {
	if len(colors) == 1 {
		return colors[0]
	}
	var l, a, b float64
	for _, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			c, _ = colorful.Hex(roster.FallbackColor)
		}
		cl, ca, cb := c.Lab()
		l += cl
		a += ca
		b += cb
	}
	n := float64(len(colors))
	return colorful.Lab(l/n, a/n, b/n).Clamped().Hex()
}

func entryColors(e *model.Entry, r *roster.Roster) []string {
	people := e.People()
	colors := make([]string, len(people))
	for i, name := range people {
		colors[i] = r.ColorOf(name)
	}
	return colors
}

// ClassifyDay maps one day's entries to its render intent. Entries are taken
// in input order; truncation keeps the head of the list.
func ClassifyDay(day string, entries []*model.Entry, r *roster.Roster) DayRender {
	out := DayRender{
		Day:      day,
		Busyness: ClassifyBusyness(len(entries)),
		Total:    len(entries),
	}

	for i, e := range entries {
		if i >= MaxDots {
			break
		}
		colors := entryColors(e, r)
		dot := Dot{EntryID: e.ID, Primary: r.ColorOf(e.Person)}
		switch e.Type {
		case model.TypeFalta:
			dot.Absence = true
			dot.Bands = Bands([]string{absenceBase, dot.Primary})
		case model.TypePlan:
			dot.Ring = dot.Primary
			dot.Bands = Bands(colors)
		default:
			dot.Bands = Bands(colors)
		}
		out.Dots = append(out.Dots, dot)
	}

	for i, e := range entries {
		if i >= MaxBadges {
			break
		}
		out.Badges = append(out.Badges, classifyEntry(e, r))
	}
	if len(entries) > MaxBadges {
		out.Overflow = len(entries) - MaxBadges
	}
	return out
}

// classifyEntry applies the type precedence: falta always renders as the
// solid dark badge overlaid with the primary color, no matter how many
// participants it has; plan is outlined and strikes through when completed;
// everything else is a solid fill over the participant bands.
func classifyEntry(e *model.Entry, r *roster.Roster) Badge {
	colors := entryColors(e, r)
	primary := r.ColorOf(e.Person)
	multi := len(e.People()) > 1

	b := Badge{
		EntryID:   e.ID,
		Label:     e.Text,
		Primary:   primary,
		Multi:     multi,
		Bands:     Bands(colors),
		Composite: composite(colors),
	}

	switch e.Type {
	case model.TypeFalta:
		b.Style = BadgeAbsence
		b.Label = fmt.Sprintf("✗ %s", e.Person)
		b.Bands = Bands([]string{absenceBase, primary})
		b.Composite = composite([]string{absenceBase, primary})
		b.Multi = false
	case model.TypePlan:
		b.Style = BadgeOutline
		b.Completed = e.Completed
	default:
		b.Style = BadgeSolid
	}
	return b
}

// GroupByDay buckets entries by their date string, preserving input order
// within each bucket.
func GroupByDay(entries []model.Entry) map[string][]*model.Entry {
	byDay := make(map[string][]*model.Entry)
	for i := range entries {
		e := &entries[i]
		byDay[e.Date] = append(byDay[e.Date], e)
	}
	return byDay
}
