package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListMeta carries pagination metadata for list endpoints.
type ListMeta struct {
	TotalItems int64 `json:"totalItems" example:"42"`
	Page       int   `json:"page" example:"1"`
	TotalPages int   `json:"totalPages" example:"5"`
}

// ListResponse is the envelope returned by every list endpoint.
type ListResponse struct {
	Meta ListMeta    `json:"meta"`
	Data interface{} `json:"data"`
}
