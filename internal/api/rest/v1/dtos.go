package v1

import "github.com/MGTheTrain/portfolio-api/internal/domain/common"

// ErrorResponse is the body of every error reply. Detail and Stack are only
// filled in development.
type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// ListResponse wraps a page of results
type ListResponse struct {
	Data   interface{} `json:"data"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func newListResponse(data interface{}, total int64, page common.Page) ListResponse {
	return ListResponse{Data: data, Total: total, Limit: page.Limit, Offset: page.Offset}
}

// CountResponse carries a single count
type CountResponse struct {
	Count int64 `json:"count"`
}

// UpdatedResponse reports how many records an operation changed
type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

// PublishedResponse reports how many scheduled posts were published
type PublishedResponse struct {
	Published int `json:"published"`
}

// AcceptedResponse acknowledges a request without returning a resource
type AcceptedResponse struct {
	Status string `json:"status"`
}

// HealthResponse reports the state of the service and its database
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
