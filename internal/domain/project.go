package domain

// Project represents an ongoing development project
type Project struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Location           string `json:"location"`
	Units              string `json:"units"`
	StartingPrice      int64  `json:"starting_price"`
	CompletionDate     string `json:"completion_date"`
	Status             string `json:"status"`
	ProgressPercentage int    `json:"progress_percentage"` // 0-100
	Image              string `json:"image"`
}

// CreateProjectRequest is the request to add a project
type CreateProjectRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	Location           string `json:"location" binding:"required"`
	Units              string `json:"units"`
	StartingPrice      int64  `json:"starting_price"`
	CompletionDate     string `json:"completion_date"`
	Status             string `json:"status"`
	ProgressPercentage int    `json:"progress_percentage"`
	Image              string `json:"image"`
}
