package model

// swagger:model Tag
type Tag struct {
	BaseModel
	Name string `gorm:"size:16;not null" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}
