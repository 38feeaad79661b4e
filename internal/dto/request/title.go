package request

// TitleRequest references category and genres by slug; all slugs must
// already exist.
type TitleRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Year        int      `json:"year" validate:"required,gte=0"`
	Description string   `json:"description,omitempty"`
	Genre       []string `json:"genre,omitempty" validate:"dive,required"`
	Category    *string  `json:"category,omitempty"`
}

type TitleUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty"`
	Genre       []string `json:"genre,omitempty" validate:"dive,required"`
	Category    *string  `json:"category,omitempty"`
}
