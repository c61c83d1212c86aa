package model

import "time"

// Entry type tags. The set is open: unknown tags are stored as-is and render
// with the default (diario) rule.
const (
	TypeDiario     = "diario"
	TypePlan       = "plan"
	TypeFalta      = "falta"
	TypeVacaciones = "vacaciones"
)

// Entry is one calendar-day record. Date is a plain YYYY-MM-DD string; there
// is no time-of-day anywhere in the model and comparisons are string equality.
type Entry struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	Date         string    `gorm:"type:date;index" json:"date"`
	Text         string    `json:"text"`
	Type         string    `gorm:"default:diario" json:"type"`
	Person       string    `gorm:"index" json:"person"`
	Participants []string  `gorm:"serializer:json" json:"participants"`
	Completed    bool      `json:"completed"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// People returns the authoritative participant set: participants when present,
// otherwise the single person field.
func (e *Entry) People() []string {
	if len(e.Participants) > 0 {
		return e.Participants
	}
	return []string{e.Person}
}

// CanMutate reports whether name may edit, toggle or delete this entry.
func (e *Entry) CanMutate(name string) bool {
	if e.Person == name {
		return true
	}
	for _, p := range e.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// Task is a private quick task, visible only to its owning person.
type Task struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Person    string    `gorm:"index" json:"person"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the progress tracker: one end date per editor.
type Profile struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	UserName string `gorm:"uniqueIndex" json:"user_name"`
	EndDate  string `gorm:"type:date" json:"end_date"`
}

// Announcement is the shared banner, a singleton row with ID 1.
type Announcement struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string        { return "entries" }
func (Task) TableName() string         { return "tasks" }
func (Profile) TableName() string      { return "profiles" }
func (Announcement) TableName() string { return "announcements" }
