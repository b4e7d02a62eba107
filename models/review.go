package models

import "time"

// Review is customer feedback, unattached to a specific booking.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserName  string    `bson:"user_name" json:"userName"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReviewInput is the request payload for submitting a review.
type ReviewInput struct {
	UserName string `json:"userName" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}
