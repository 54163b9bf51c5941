package domain

import "time"

type ToolCondition string

const (
	ToolConditionNew       ToolCondition = "new"
	ToolConditionExcellent ToolCondition = "excellent"
	ToolConditionGood      ToolCondition = "good"
	ToolConditionFair      ToolCondition = "fair"
	ToolConditionPoor      ToolCondition = "poor"
)

func (c ToolCondition) Valid() bool {
	switch c {
	case ToolConditionNew, ToolConditionExcellent, ToolConditionGood, ToolConditionFair, ToolConditionPoor:
		return true
	}
	return false
}

type Tool struct {
	ID          int32         `json:"id"`
	OwnerID     int32         `json:"owner_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Brand       string        `json:"brand,omitempty"`
	Model       string        `json:"model,omitempty"`
	CategoryID  int32         `json:"category_id"`
	DailyPrice  float64       `json:"daily_price"`
	Warranty    float64       `json:"warranty"`
	Condition   ToolCondition `json:"condition"`
	IsAvailable bool          `json:"is_available"`
	ImageURL    string        `json:"image_url,omitempty"`
	// Denormalized review aggregates, maintained only by the review
	// pipeline. The rating table computes its own stats on read.
	AvgRating   float64   `json:"avg_rating"`
	RatingCount int32     `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToolPatch carries a partial tool update. Nil fields are left untouched.
type ToolPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Brand       *string        `json:"brand,omitempty"`
	Model       *string        `json:"model,omitempty"`
	CategoryID  *int32         `json:"category_id,omitempty"`
	DailyPrice  *float64       `json:"daily_price,omitempty"`
	Warranty    *float64       `json:"warranty,omitempty"`
	Condition   *ToolCondition `json:"condition,omitempty"`
	IsAvailable *bool          `json:"is_available,omitempty"`
	ImageURL    *string        `json:"image_url,omitempty"`
}

// Apply merges the patch into the tool.
func (p *ToolPatch) Apply(t *Tool) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Brand != nil {
		t.Brand = *p.Brand
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.DailyPrice != nil {
		t.DailyPrice = *p.DailyPrice
	}
	if p.Warranty != nil {
		t.Warranty = *p.Warranty
	}
	if p.Condition != nil {
		t.Condition = *p.Condition
	}
	if p.IsAvailable != nil {
		t.IsAvailable = *p.IsAvailable
	}
	if p.ImageURL != nil {
		t.ImageURL = *p.ImageURL
	}
}

// ToolFilter holds the independent, conjunctive listing filters. Zero-valued
// pointers impose no constraint; Skip/Limit bound the result window.
type ToolFilter struct {
	Query      string
	CategoryID *int32
	Brand      string
	Condition  *ToolCondition
	MinPrice   *float64
	MaxPrice   *float64
	Available  *bool
	OwnerID    *int32
	Skip       int32
	Limit      int32
}

type ToolStats struct {
	TotalTools       int32            `json:"total_tools"`
	AvailableTools   int32            `json:"available_tools"`
	RentedTools      int32            `json:"rented_tools"`
	ToolsByCategory  map[string]int32 `json:"tools_by_category"`
	ToolsByCondition map[string]int32 `json:"tools_by_condition"`
}
