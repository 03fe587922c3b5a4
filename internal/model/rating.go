package model

const (
	MinRate = 1
	MaxRate = 5
)

// swagger:model Rating
type Rating struct {
	BaseModel
	SetID  uint `gorm:"uniqueIndex:idx_rating_user_set;not null" json:"set"`
	UserID uint `gorm:"uniqueIndex:idx_rating_user_set;not null" json:"userId"`
	Rate   int  `gorm:"not null" json:"rate"`
}

func (Rating) TableName() string {
	return "ratings"
}

type RatingSummary struct {
	SetID   uint    `json:"setId"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
