package types

// SettingsResponse wraps the settings value returned by GET /settings.
type SettingsResponse struct {
	Settings Settings `json:"settings"`
}

// ModelsResponse wraps a reconciled model list.
type ModelsResponse struct {
	// List of active models.
	Models []ModelEntry `json:"models"`
}

// UpdateRequest is the body of PUT /settings/{key}.
type UpdateRequest struct {
	// New value for the addressed field.
	// example: 0.2
	Value any `json:"value"`
}

// PromptResponse is returned by GET /settings/prompt.
type PromptResponse struct {
	// Effective system prompt after default fallback.
	// example: You are a careful coding assistant.
	Prompt string `json:"prompt" example:"You are a careful coding assistant."`
}

// ChangeEvent is one NDJSON line on GET /events.
type ChangeEvent struct {
	// Monotonic change sequence number for this process.
	// example: 4
	Seq uint64 `json:"seq" example:"4"`
	// Server time of the change in unix seconds.
	// example: 1700000000
	UnixTime int64 `json:"unix_time" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
