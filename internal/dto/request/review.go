package request

type ReviewRequest struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required,gte=1,lte=10"`
}

type ReviewUpdateRequest struct {
	Text  *string `json:"text,omitempty"`
	Score *int    `json:"score,omitempty" validate:"omitempty,gte=1,lte=10"`
}
