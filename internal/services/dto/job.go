package dto

import "time"

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required" validate:"required,max=200"`
	Company     string `json:"company" binding:"required" validate:"required,max=200"`
	Location    string `json:"location" binding:"required" validate:"required,max=200"`
	Description string `json:"description" binding:"required" validate:"required"`
	ApplyLink   string `json:"apply_link" validate:"omitempty,url"`
}

// SearchJobsRequest is the listing query: free-text contains filters,
// AND-composed, plus a 1-based page number.
type SearchJobsRequest struct {
	Title    string `form:"title" json:"title"`
	Location string `form:"location" json:"location"`
	Company  string `form:"company" json:"company"`
	Page     int    `form:"page" json:"page"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ApplyLink   string    `json:"apply_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobListResponse is one page of listings plus pagination metadata.
type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int64         `json:"pages"`
}
