package domain

import "time"

// Review is a free-form review document kept in the secondary document
// store, keyed back to relational rows by id. It is structurally separate
// from the Rating table; the two aggregates are not interchangeable.
type Review struct {
	ID        string       `json:"id"`
	ToolID    int32        `json:"tool_id"`
	UserID    int32        `json:"user_id"`
	RentalID  int32        `json:"rental_id"`
	Rating    int32        `json:"rating"`
	Comment   string       `json:"comment,omitempty"`
	Reply     *ReviewReply `json:"reply,omitempty"`
	Likes     int32        `json:"likes"`
	Reported  bool         `json:"reported"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ReviewReply struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Promotion is a marketing document in the secondary store.
type Promotion struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Type            string     `json:"type"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
	ToolIDs         []int32    `json:"tool_ids,omitempty"`
	CategoryIDs     []int32    `json:"category_ids,omitempty"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	Code            string     `json:"code,omitempty"`
	UsageLimit      int32      `json:"usage_limit,omitempty"`
	UsageCount      int32      `json:"usage_count"`
	Active          bool       `json:"active"`
	Priority        int32      `json:"priority"`
}

// ToolStatistics combines the relational row aggregate with the document
// store distribution for one tool.
type ToolStatistics struct {
	Tool         *Tool           `json:"tool"`
	TotalReviews int32           `json:"total_reviews"`
	Distribution map[int32]int32 `json:"rating_distribution"`
	ComputedMean float64         `json:"computed_mean"`
}
