package response

// Messages shared across handlers. Per-resource CRUD failures are built from
// the resource name at the call site ("Failed to fetch universities", ...).
const (
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidCredentials = "Invalid credentials"
	MsgLoginFailed        = "Login failed"
	MsgLogoutFailed       = "Logout failed"
)
