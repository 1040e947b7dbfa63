package models

// Messages surfaced in JSON error bodies. The two access messages are
// deliberately distinct: the first means no valid admin identity was
// presented, the second means the identity was valid but out of scope.
const (
	MsgInvalidInput       = "invalid input"
	MsgInvalidCredentials = "invalid credentials"
	MsgAdminRequired      = "admin access required"
	MsgSuperRequired      = "super access required"
	MsgNotFound           = "not found"
	MsgInternalError      = "internal server error"
)
