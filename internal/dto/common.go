package dto

// Intent tags every mutating success response with the operation kind.
type Intent string

const (
	IntentCreate Intent = "create"
	IntentUpdate Intent = "update"
	IntentDelete Intent = "delete"
)

// SuccessResponse is the envelope for all mutating operations.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Intent  Intent      `json:"intent"`
	Data    interface{} `json:"data"`
}

func Success(intent Intent, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Intent: intent, Data: data}
}

// PageInfo describes one page of a list response.
type PageInfo struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
