package response

import (
	"time"

	"review-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func ReviewToResponse(review *entity.Review, authorUsername string) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID.String(),
		Text:    review.Text,
		Author:  authorUsername,
		Score:   review.Score,
		PubDate: review.CreatedAt,
	}
}
