// Package identity models who is signed in and decides what a protected page may show.
package identity

import "time"

// Member is the signed-in user as reported by the identity provider. Display only.
type Member struct {
	ID          string    `json:"id"`
	Nickname    string    `json:"nickname,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	LoginEmail  string    `json:"login_email,omitempty"`
	CreatedDate time.Time `json:"created_date,omitempty"`
}

func (m *Member) DisplayName() string {
	switch {
	case m.Nickname != "":
		return m.Nickname
	case m.FirstName != "":
		return m.FirstName
	default:
		return "User Profile"
	}
}

type Status int

const (
	StatusUnauthenticated Status = iota
	StatusLoading
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// State is one of Loading, Unauthenticated or Authenticated(member).
// The zero value is Unauthenticated.
type State struct {
	status Status
	member *Member
}

func Loading() State { return State{status: StatusLoading} }

func Unauthenticated() State { return State{status: StatusUnauthenticated} }

func Authenticated(m Member) State { return State{status: StatusAuthenticated, member: &m} }

func (s State) Status() Status { return s.status }

func (s State) IsLoading() bool { return s.status == StatusLoading }

func (s State) IsAuthenticated() bool { return s.status == StatusAuthenticated }

// Member returns nil unless the state is Authenticated.
func (s State) Member() *Member { return s.member }
