package common

// AccessTokenCookieName is the cookie used to carry the session token
// between the browser and the admin API.
const AccessTokenCookieName = "auth-token"

// DefaultAdminUsername and DefaultAdminPassword are the documented
// development credentials seeded by the bootstrap. Rotate them in any
// real deployment.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@portfolio.com"
)

// RoleAdmin is the only role the system currently grants.
const RoleAdmin = "admin"
