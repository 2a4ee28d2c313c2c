package domain

// LoginRequest carries the identifier issued by the remote auth service.
// Credential verification happens there; the core only establishes the
// local session and mints the API token for the delivery surface.
type LoginRequest struct {
	UID string `json:"uid" valid:"required~UID is required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
