package jobs

import (
	"strings"

	"joblens/internal/models"
)

// Result is the derived state the view renders: the visible job list
// and the match/total counts. MatchCount always equals len(Visible).
type Result struct {
	Visible    []models.Job
	MatchCount int
	TotalCount int
}

// Engine computes the visible job list from three independent filter
// sources: the free-text search, the manually applied tag filters and
// the profile skill list. Search text and manual tags are transient
// session state; skills persist with the profile.
type Engine struct {
	searchText string
	manualTags []string
}

// NewEngine returns an engine with no active search or tags.
func NewEngine() *Engine {
	return &Engine{}
}

// SetSearch replaces the free-text query.
func (e *Engine) SetSearch(text string) {
	e.searchText = text
}

// SearchText returns the current free-text query.
func (e *Engine) SearchText() string {
	return e.searchText
}

// AddTag adds a manual filter tag. No-op when already present.
func (e *Engine) AddTag(tag string) {
	for _, t := range e.manualTags {
		if t == tag {
			return
		}
	}
	e.manualTags = append(e.manualTags, tag)
}

// RemoveTag removes a manual filter tag if present.
func (e *Engine) RemoveTag(tag string) {
	for i, t := range e.manualTags {
		if t == tag {
			e.manualTags = append(e.manualTags[:i], e.manualTags[i+1:]...)
			return
		}
	}
}

// ManualTags returns the active manual tags.
func (e *Engine) ManualTags() []string {
	out := make([]string, len(e.manualTags))
	copy(out, e.manualTags)
	return out
}

// ClearAll resets the search text and the manual tags. Profile skills
// are a separate, persistent filter dimension and are never touched.
func (e *Engine) ClearAll() {
	e.searchText = ""
	e.manualTags = nil
}

// Apply recomputes the visible list for the given collection and
// profile skills using the engine's transient state.
func (e *Engine) Apply(all []models.Job, skills []string) Result {
	return Apply(all, e.searchText, e.manualTags, skills)
}

// Apply computes the visible job list in three stages: the skill-based
// candidate pool, the free-text refinement, then the manual tag
// conjunction. The result preserves the collection order and contains
// each job at most once.
func Apply(all []models.Job, searchText string, manualTags []string, skills []string) Result {
	search := strings.ToLower(strings.TrimSpace(searchText))

	var visible []models.Job
	for _, job := range all {
		// Iterating the collection once keeps the output a stable,
		// duplicate-free subsequence even when several profile skills
		// match several job skills.
		if !inSkillPool(job, skills) {
			continue
		}
		if search != "" && !matchesSearch(job, search) {
			continue
		}
		if !hasAllTags(job, manualTags) {
			continue
		}
		visible = append(visible, job)
	}

	return Result{
		Visible:    visible,
		MatchCount: len(visible),
		TotalCount: len(all),
	}
}

// inSkillPool reports whether the job belongs to the skill-based
// candidate pool: any profile skill is a case-insensitive substring of
// any job skill. An empty skill list imposes no restriction.
func inSkillPool(job models.Job, skills []string) bool {
	if len(skills) == 0 {
		return true
	}
	for _, skill := range skills {
		needle := strings.ToLower(skill)
		for _, jobSkill := range job.Skills {
			if strings.Contains(strings.ToLower(jobSkill), needle) {
				return true
			}
		}
	}
	return false
}

// matchesSearch reports whether the lowercased search text appears in
// the company, position, location, role, contract or any skill.
func matchesSearch(job models.Job, search string) bool {
	fields := []string{job.Company, job.Position, job.Location, job.Role, job.Contract}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

// hasAllTags reports whether the job's tag set (role, level and every
// skill) contains each manual tag. Tags come from clicking rendered
// chips, so matching is exact and case-sensitive.
func hasAllTags(job models.Job, manualTags []string) bool {
	if len(manualTags) == 0 {
		return true
	}
	tags := job.Tags()
	for _, want := range manualTags {
		found := false
		for _, t := range tags {
			if t == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
