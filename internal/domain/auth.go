package domain

// RoleTeacher is the only role this service issues tokens for.
const RoleTeacher = "teacher"

// Claims is the identity payload embedded in issued tokens.
// Username is carried for wire compatibility but never populated:
// accounts have no username column.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

// TokenPair bundles the access and refresh tokens minted at login.
// Only the refresh token is ever persisted.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
