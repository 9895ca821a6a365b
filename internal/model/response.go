package model

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ListResponse adds the element count for list endpoints.
type ListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// Concrete envelope shapes for the OpenAPI document.

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type AuthEnvelope struct {
	Success bool     `json:"success" example:"true"`
	Data    AuthData `json:"data"`
	Message string   `json:"message"`
}

type UserEnvelope struct {
	Success bool       `json:"success" example:"true"`
	Data    UserPublic `json:"data"`
	Message string     `json:"message"`
}

type TaskEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Data    Task   `json:"data"`
	Message string `json:"message"`
}

type TaskListEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Count   int    `json:"count"`
	Data    []Task `json:"data"`
	Message string `json:"message"`
}

type StatsEnvelope struct {
	Success bool      `json:"success" example:"true"`
	Data    TaskStats `json:"data"`
	Message string    `json:"message"`
}

type InfoResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Documentation string            `json:"documentation"`
	Endpoints     map[string]string `json:"endpoints"`
}

type PingResponse struct {
	Message string `json:"message"`
}
