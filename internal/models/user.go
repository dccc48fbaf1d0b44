// Package models defines the directory record types shared across the
// portal: users, experiences, and publications.
package models

// Role classifies a directory record.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"

	// RoleGuest is a session-only pseudo-role for anonymous public
	// visitors. It is never persisted in the directory.
	RoleGuest Role = "guest"
)

// User is a directory record for a faculty member or administrator.
//
// Id is assigned once at creation and immutable afterwards. Email
// uniqueness is enforced at creation only. Password is a plaintext string
// by design; the portal stores mock data and hardening is out of scope.
// Photo and CV, when present, are embedded data URIs.
type User struct {
	Id           int          `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	Role         Role         `json:"role"`
	Designation  string       `json:"designation,omitempty"`
	Department   string       `json:"department,omitempty"`
	Bio          string       `json:"bio,omitempty"`
	Education    string       `json:"education,omitempty"`
	Research     string       `json:"research,omitempty"`
	Photo        string       `json:"photo,omitempty"`
	CV           string       `json:"cv,omitempty"`
	Experiences  Experiences  `json:"experiences,omitempty"`
	Publications Publications `json:"publications,omitempty"`
}

// Clone returns a deep copy of u. The session layer hands out copies so
// that the active actor is never a live reference into the directory.
func (u User) Clone() User {
	c := u
	if len(u.Experiences.Entries) > 0 {
		c.Experiences.Entries = make([]Experience, len(u.Experiences.Entries))
		copy(c.Experiences.Entries, u.Experiences.Entries)
	}
	c.Publications = u.Publications.clone()
	return c
}

// ProfileUpdate is the set of fields the profile editor may change.
// Applying it never touches id, email, password, or role.
type ProfileUpdate struct {
	Name         string
	Designation  string
	Department   string
	Bio          string
	Education    string
	Research     string
	Photo        string
	CV           string
	Experiences  Experiences
	Publications Publications
}

// Apply merges the update over u in place.
func (u *User) Apply(p ProfileUpdate) {
	u.Name = p.Name
	u.Designation = p.Designation
	u.Department = p.Department
	u.Bio = p.Bio
	u.Education = p.Education
	u.Research = p.Research
	u.Photo = p.Photo
	u.CV = p.CV
	u.Experiences = p.Experiences
	u.Publications = p.Publications
}

// UpdateOf captures u's editable fields as a ProfileUpdate, useful as the
// starting point for an interactive edit.
func UpdateOf(u User) ProfileUpdate {
	return ProfileUpdate{
		Name:         u.Name,
		Designation:  u.Designation,
		Department:   u.Department,
		Bio:          u.Bio,
		Education:    u.Education,
		Research:     u.Research,
		Photo:        u.Photo,
		CV:           u.CV,
		Experiences:  u.Experiences,
		Publications: u.Publications,
	}
}
