package domain

import "time"

// Rating is a user's 1-5 score for a tool. At most one rating exists per
// (user, tool) pair.
type Rating struct {
	ID        int32     `json:"id"`
	ToolID    int32     `json:"tool_id"`
	UserID    int32     `json:"user_id"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingPatch carries a partial rating update. Nil fields are left untouched.
type RatingPatch struct {
	Rating  *float64 `json:"rating,omitempty"`
	Comment *string  `json:"comment,omitempty"`
}

func (p *RatingPatch) Apply(r *Rating) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}

// RatingStats is computed on read from the rating table. Non-integer rating
// values are bucketed by truncation.
type RatingStats struct {
	TotalRatings  int32           `json:"total_ratings"`
	AverageRating float64         `json:"average_rating"`
	Distribution  map[int32]int32 `json:"rating_distribution"`
}
