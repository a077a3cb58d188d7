package entity

// Session identifies the currently signed-in user as exposed by the session gate.
type Session struct {
	UserID      string // Stable identifier of the authenticated user.
	DisplayName string // Human-readable name for greeting purposes; may be empty.
}
