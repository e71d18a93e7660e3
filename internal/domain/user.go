package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// ParseUserID parses the canonical string form.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{UUID: id}, nil
}

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// IsZero reports whether the id is unset.
func (u UserID) IsZero() bool { return u.UUID == uuid.Nil }

// Role selects which profile a User carries.
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor
}

// DefaultMaxStudents is the intake limit for mentors that do not set one.
const DefaultMaxStudents = 5

// StudentProfile holds student-only fields.
type StudentProfile struct {
	Name           string `json:"name"`
	USN            string `json:"usn"`
	Domain         string `json:"domain"`
	Specialization string `json:"specialization,omitempty"`
	Year           int    `json:"year,omitempty"`
}

// MentorProfile holds mentor-only fields. It is the read-only input to scoring.
type MentorProfile struct {
	ID               UserID   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email,omitempty"`
	Expertise        []string `json:"expertise"`
	Summary          string   `json:"summary,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	ProjectsDone     string   `json:"projects_done,omitempty"`
	MaxStudents      int      `json:"max_students"`
}

// User is a student or a mentor, selected by Role. Only the profile matching
// Role is set.
type User struct {
	ID           UserID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	student *StudentProfile
	mentor  *MentorProfile
}

// NewStudent builds a student user.
func NewStudent(id UserID, email string, p StudentProfile) *User {
	return &User{ID: id, Email: email, Role: RoleStudent, student: &p}
}

// NewMentor builds a mentor user. The profile id and email follow the user.
func NewMentor(id UserID, email string, p MentorProfile) *User {
	p.ID = id
	p.Email = email
	if p.MaxStudents <= 0 {
		p.MaxStudents = DefaultMaxStudents
	}
	return &User{ID: id, Email: email, Role: RoleMentor, mentor: &p}
}

// Student returns the student profile, or false if u is not a student.
func (u *User) Student() (*StudentProfile, bool) {
	if u == nil || u.Role != RoleStudent || u.student == nil {
		return nil, false
	}
	return u.student, true
}

// Mentor returns the mentor profile, or false if u is not a mentor.
func (u *User) Mentor() (*MentorProfile, bool) {
	if u == nil || u.Role != RoleMentor || u.mentor == nil {
		return nil, false
	}
	return u.mentor, true
}

// DisplayName returns the name from whichever profile is set.
func (u *User) DisplayName() string {
	if s, ok := u.Student(); ok {
		return s.Name
	}
	if m, ok := u.Mentor(); ok {
		return m.Name
	}
	return u.Email
}

// Identity is the acting user for an authorization check, as asserted by the
// authentication layer.
type Identity struct {
	UserID UserID
	Role   Role
}

// IsStudent reports whether the identity acts as the given student.
func (i Identity) IsStudent(id UserID) bool {
	return i.Role == RoleStudent && i.UserID == id
}

// IsMentor reports whether the identity acts as the given mentor.
func (i Identity) IsMentor(id *UserID) bool {
	return i.Role == RoleMentor && id != nil && i.UserID == *id
}
