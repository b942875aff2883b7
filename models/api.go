package models

// CredentialsRequest is the body of POST /register and POST /login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTodoRequest is the body of POST /tasks.
type CreateTodoRequest struct {
	Task string `json:"task"`
}

// UpdateTodoRequest is the body of PUT /tasks/{id}.
// Pointer fields distinguish "omitted" from zero values; omitted fields
// keep their stored value.
type UpdateTodoRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
}

// MessageResponse is returned by endpoints whose only payload is a status line.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful POST /login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// TodoListResponse is returned by GET /tasks.
type TodoListResponse struct {
	Tasks []Todo `json:"tasks"`
}

// UpdatedResponse echoes the path id of a successful PUT /tasks/{id}.
type UpdatedResponse struct {
	UpdatedID string `json:"updatedID"`
}

// DeletedResponse echoes the path id of a successful DELETE /tasks/{id}.
type DeletedResponse struct {
	DeletedID string `json:"deletedID"`
}

// ErrorResponse is the JSON envelope for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
