package dto

import "time"

// FeedbackRequest represents a submitted rating
type FeedbackRequest struct {
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// FeedbackResponse represents a stored rating
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"createdAt"`
}
