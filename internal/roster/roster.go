package roster

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

// FallbackColor is used for participant names not present in the roster.
const FallbackColor = "#cccccc"

// User is one roster member. The roster is deployment configuration, not data:
// it ships in the config file and is immutable at runtime.
type User struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
	Role  string `yaml:"role" json:"role"`
	Color string `yaml:"color" json:"color"`

	// CanEditBoard gates the shared announcement. When unset it defaults to
	// role == VIEWER, which is the rule the production deployment runs with
	// (see DESIGN.md, open question on role inversion).
	CanEditBoard *bool `yaml:"can_edit_board,omitempty" json:"can_edit_board,omitempty"`
}

func (u User) IsEditor() bool { return u.Role == RoleEditor }

func (u User) BoardEditor() bool {
	if u.CanEditBoard != nil {
		return *u.CanEditBoard
	}
	return u.Role == RoleViewer
}

type Roster struct {
	users   []User
	byName  map[string]User
	byEmail map[string]User
}

// New validates the configured users and builds the lookup indexes.
func New(users []User) (*Roster, error) {
	r := &Roster{
		users:   make([]User, 0, len(users)),
		byName:  make(map[string]User, len(users)),
		byEmail: make(map[string]User, len(users)),
	}
	for i, u := range users {
		if u.Name == "" || u.ID == "" {
			return nil, fmt.Errorf("roster user %d: id and name are required", i)
		}
		if u.Role != RoleEditor && u.Role != RoleViewer {
			return nil, fmt.Errorf("roster user %q: unknown role %q", u.Name, u.Role)
		}
		c, err := colorful.Hex(u.Color)
		if err != nil {
			return nil, fmt.Errorf("roster user %q: bad color %q: %w", u.Name, u.Color, err)
		}
		u.Color = c.Hex()
		if _, dup := r.byName[u.Name]; dup {
			return nil, fmt.Errorf("roster user %q: duplicate name", u.Name)
		}
		key := strings.ToLower(u.Email)
		if _, dup := r.byEmail[key]; key != "" && dup {
			return nil, fmt.Errorf("roster user %q: duplicate email %q", u.Name, u.Email)
		}
		r.users = append(r.users, u)
		r.byName[u.Name] = u
		if key != "" {
			r.byEmail[key] = u
		}
	}
	if len(r.users) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}
	return r, nil
}

func (r *Roster) Users() []User { return r.users }

func (r *Roster) Names() []string {
	names := make([]string, len(r.users))
	for i, u := range r.users {
		names[i] = u.Name
	}
	return names
}

func (r *Roster) Editors() []User {
	var out []User
	for _, u := range r.users {
		if u.IsEditor() {
			out = append(out, u)
		}
	}
	return out
}

func (r *Roster) ByName(name string) (User, bool) {
	u, ok := r.byName[name]
	return u, ok
}

func (r *Roster) ByEmail(email string) (User, bool) {
	u, ok := r.byEmail[strings.ToLower(email)]
	return u, ok
}

// ColorOf resolves a participant name to its display color. Unknown names get
// the neutral fallback so stale entries still render.
func (r *Roster) ColorOf(name string) string {
	if u, ok := r.byName[name]; ok {
		return u.Color
	}
	return FallbackColor
}
