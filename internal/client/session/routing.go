package session

import "pathshala/internal/common"

// Destination is the landing screen the client navigates to after login.
type Destination int

const (
	DestinationStudentHome Destination = iota
	DestinationAdmin
)

func (d Destination) String() string {
	if d == DestinationAdmin {
		return "admin"
	}
	return "home"
}

// RouteFor maps a user's role to a landing destination. The comparison is
// case-sensitive against the role string the backend issues ("Admin");
// every other value, including "admin", "user", and empty, lands on the
// student home.
func RouteFor(u User) Destination {
	if u.Role == common.RoleAdmin {
		return DestinationAdmin
	}
	return DestinationStudentHome
}
