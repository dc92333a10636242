package projects

import "time"

// Project is a showcase entry. Slug is derived from the title and kept
// unique across the collection; it is regenerated when the title changes.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Images       []string  `json:"images"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewProject carries the caller-supplied fields for creation. Id, slug and
// timestamps are generated by the service.
type NewProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Images       []string `json:"images"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

// ProjectUpdate is a partial update: nil pointers leave the field as-is.
// ID and CreatedAt are immutable and have no counterpart here.
type ProjectUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Images       *[]string `json:"images"`
	LiveURL      *string   `json:"liveUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Category     *string   `json:"category"`
	Featured     *bool     `json:"featured"`
}

// ListOptions filters and paginates project listings. Page and Limit are
// 1-based; Featured filters only when non-nil; Search matches title,
// description and technologies case-insensitively.
type ListOptions struct {
	Page     int
	Limit    int
	Category string
	Featured *bool
	Search   string
}

// Page is a listing result: one slice of the filtered set plus the total
// size of that filtered (not paginated) set.
type Page struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
