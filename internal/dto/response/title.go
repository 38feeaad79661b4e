package response

import (
	"review-catalog/internal/data/entity"
)

// TitleResponse expands category and genres to full objects. Rating is the
// mean review score, null while the title has no reviews.
type TitleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Rating      *float64          `json:"rating"`
	Description string            `json:"description"`
	Genre       []GenreResponse   `json:"genre"`
	Category    *CategoryResponse `json:"category"`
}

func TitleToResponse(title *entity.Title, genres []*entity.Genre, category *entity.Category, rating *float64) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Rating:      rating,
		Description: title.Description,
		Genre:       GenresToResponse(genres),
	}

	if category != nil {
		categoryResp := CategoryToResponse(category)
		resp.Category = &categoryResp
	}

	return resp
}
