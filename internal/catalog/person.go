package catalog

import (
	"time"

	"talknotes/internal/textutil"
)

// Person is a tracked speaker.
type Person struct {
	ID         int
	Name       string
	FolderName string
	// Role is the current role; empty means none has been recorded.
	Role      string
	PastRoles []string
	Talks     []*Talk
}

// DisplayName returns the title-cased name.
func (p *Person) DisplayName() string {
	return textutil.TitleCase(p.Name)
}

// UpdateRole sets the current role. When moveCurrent is true and a role is
// already set, the old role is appended to PastRoles first.
func (p *Person) UpdateRole(newRole string, moveCurrent bool) {
	if moveCurrent && p.Role != "" {
		p.PastRoles = append(p.PastRoles, p.Role)
	}
	p.Role = newRole
}

// NewTalk appends a talk dated day with the next local ID.
func (p *Person) NewTalk(day time.Time) *Talk {
	talk := &Talk{ID: len(p.Talks), Date: DateOf(day)}
	p.Talks = append(p.Talks, talk)
	return talk
}
