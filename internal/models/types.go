package models

// Job represents a single job posting in the collection.
// JSON field names match the bootstrap data feed, which uses
// "new" and "featured" for the badge flags.
type Job struct {
	ID          int      `json:"id"`
	Company     string   `json:"company"`
	Logo        string   `json:"logo,omitempty"`
	IsNew       bool     `json:"new"`
	IsFeatured  bool     `json:"featured"`
	Position    string   `json:"position"`
	Role        string   `json:"role"`
	Level       string   `json:"level"`
	PostedAt    string   `json:"postedAt"`
	Contract    string   `json:"contract"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// Tags returns the chip list rendered on a job card: role, level,
// then every skill, in that order.
func (j Job) Tags() []string {
	tags := make([]string, 0, len(j.Skills)+2)
	tags = append(tags, j.Role, j.Level)
	tags = append(tags, j.Skills...)
	return tags
}

// JobDraft holds the mutable fields of a job as entered on the
// management form. The repository assigns the ID.
type JobDraft struct {
	Company     string   `json:"company"`
	Logo        string   `json:"logo,omitempty"`
	IsNew       bool     `json:"new"`
	IsFeatured  bool     `json:"featured"`
	Position    string   `json:"position"`
	Role        string   `json:"role"`
	Level       string   `json:"level"`
	PostedAt    string   `json:"postedAt"`
	Contract    string   `json:"contract"`
	Location    string   `json:"location"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// Profile represents the user profile. Skills keep insertion order and
// never contain duplicates.
type Profile struct {
	Name     string   `json:"name"`
	Position string   `json:"position"`
	Email    string   `json:"email"`
	Skills   []string `json:"skills"`
}
