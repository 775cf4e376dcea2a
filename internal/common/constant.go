package common

// Role values issued by the backend. Only RoleAdmin is semantically
// distinguished by the client; everything else is treated as a student.
const (
	RoleAdmin   = "Admin"
	RoleStudent = "user"
)

// AuthHeaderName is the HTTP header carrying the bearer token.
const AuthHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "
