package entity

import (
	"github.com/google/uuid"
)

// Review holds a user's single verdict on a title. At most one review per
// (title, author) pair; the schema enforces it with a unique index.
type Review struct {
	BaseSimple
	TitleID  uuid.UUID `db:"title_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Text     string    `db:"text"`
	Score    int       `db:"score"` // 1-10
}
