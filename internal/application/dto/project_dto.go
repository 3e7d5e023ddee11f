package dto

// CreateProjectRequest body para POST /api/projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// ProjectResponse representación pública de un proyecto.
type ProjectResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
