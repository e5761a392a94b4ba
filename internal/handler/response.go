package handler

// SuccessResponse is the canonical success envelope returned by every endpoint.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// UserSummary is the client-facing shape of a user record. It never carries
// the password hash.
type UserSummary struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	TenantID   string `json:"tenantId"`
	LocationID string `json:"locationId"`
}
