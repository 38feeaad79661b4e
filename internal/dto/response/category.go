package response

import (
	"review-catalog/internal/data/entity"
)

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
	}
}
