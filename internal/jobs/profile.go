package jobs

import (
	"strings"

	"joblens/internal/models"
	"joblens/internal/storage"
)

// ProfileManager owns the user profile. Name, position and email change
// together through Save; skills mutate independently and double as a
// filter dimension.
type ProfileManager struct {
	adapter *storage.Adapter
	profile models.Profile
}

// NewProfileManager hydrates the profile from the store, falling back
// to an empty default on first run.
func NewProfileManager(adapter *storage.Adapter) (*ProfileManager, error) {
	p, err := adapter.LoadProfile()
	if err != nil {
		return nil, err
	}
	return &ProfileManager{adapter: adapter, profile: p}, nil
}

// Profile returns a copy of the current profile.
func (m *ProfileManager) Profile() models.Profile {
	p := m.profile
	p.Skills = make([]string, len(m.profile.Skills))
	copy(p.Skills, m.profile.Skills)
	return p
}

// Skills returns the skill list in insertion order.
func (m *ProfileManager) Skills() []string {
	out := make([]string, len(m.profile.Skills))
	copy(out, m.profile.Skills)
	return out
}

// Save overwrites the form fields and persists. Skills are untouched.
func (m *ProfileManager) Save(name, position, email string) error {
	m.profile.Name = name
	m.profile.Position = position
	m.profile.Email = email
	return m.adapter.SaveProfile(m.profile)
}

// AddSkill appends a skill and persists. Returns false without
// mutating when the skill is empty after trimming or already present
// (exact, case-sensitive match).
func (m *ProfileManager) AddSkill(skill string) (bool, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false, nil
	}
	for _, s := range m.profile.Skills {
		if s == skill {
			return false, nil
		}
	}
	m.profile.Skills = append(m.profile.Skills, skill)
	return true, m.adapter.SaveProfile(m.profile)
}

// RemoveSkill removes the first exact match if present and persists.
func (m *ProfileManager) RemoveSkill(skill string) error {
	for i, s := range m.profile.Skills {
		if s == skill {
			m.profile.Skills = append(m.profile.Skills[:i], m.profile.Skills[i+1:]...)
			return m.adapter.SaveProfile(m.profile)
		}
	}
	return nil
}
