package models

// MessageResponse is the body of every error response and of the few
// endpoints that answer with a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
