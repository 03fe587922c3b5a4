package model

import "time"

// swagger:model Flashcard
type Flashcard struct {
	BaseModel
	Front        string    `gorm:"type:text;not null" json:"front"`
	Back         string    `gorm:"type:text;not null" json:"back"`
	LastModified time.Time `gorm:"autoUpdateTime" json:"lastModified"`
	SetID        uint      `gorm:"index;not null" json:"flashcardSet"`
	AuthorID     uint      `gorm:"index;not null" json:"authorId"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
