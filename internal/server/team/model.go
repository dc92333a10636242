package team

import "time"

// Member is one entry of the team roster. JoinedDate is stamped on
// creation and never changes; IsActive controls public visibility
// without losing the record.
type Member struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	Bio         string            `json:"bio"`
	Avatar      string            `json:"avatar,omitempty"`
	Skills      []string          `json:"skills"`
	Experience  string            `json:"experience"`
	Specialties []string          `json:"specialties"`
	SocialLinks map[string]string `json:"socialLinks"`
	JoinedDate  time.Time         `json:"joinedDate"`
	IsActive    bool              `json:"isActive"`
}

// NewMember carries the caller-supplied fields for creation. Id and
// join date are generated by the service; new members start active.
type NewMember struct {
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	Bio         string            `json:"bio"`
	Avatar      string            `json:"avatar"`
	Skills      []string          `json:"skills"`
	Experience  string            `json:"experience"`
	Specialties []string          `json:"specialties"`
	SocialLinks map[string]string `json:"socialLinks"`
}

// MemberUpdate is a partial update: nil pointers leave the field as-is.
// ID and JoinedDate are immutable and have no counterpart here.
type MemberUpdate struct {
	Name        *string            `json:"name"`
	Role        *string            `json:"role"`
	Bio         *string            `json:"bio"`
	Avatar      *string            `json:"avatar"`
	Skills      *[]string          `json:"skills"`
	Experience  *string            `json:"experience"`
	Specialties *[]string          `json:"specialties"`
	SocialLinks *map[string]string `json:"socialLinks"`
	IsActive    *bool              `json:"isActive"`
}
