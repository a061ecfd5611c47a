package predictions

import "time"

// Prediction is a single published tip. Rows are created and mutated by
// admins only; readers never write.
type Prediction struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Match      string `gorm:"column:match_title;not null" json:"match"`
	Tip        string `gorm:"not null" json:"tip"`
	Confidence string `json:"confidence,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
