package model

type SetStatus string

const (
	SetPublic  SetStatus = "public"
	SetPrivate SetStatus = "private"
)

func (s SetStatus) Valid() bool {
	return s == SetPublic || s == SetPrivate
}

// FlashcardSet 闪卡集合，至少 4 张卡片才能生成测验
// swagger:model FlashcardSet
type FlashcardSet struct {
	BaseModel
	Name       string    `gorm:"size:96;not null" json:"name"`
	PublicID   string    `gorm:"size:21;uniqueIndex" json:"publicId"`
	AuthorID   uint      `gorm:"index;not null" json:"authorId"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Status     SetStatus `gorm:"size:7;default:'public'" json:"status"`
	IsPremium  bool      `gorm:"default:false" json:"isPremium"`
	TagID      *uint     `gorm:"index" json:"tagId"`
	Tag        *Tag      `gorm:"foreignKey:TagID" json:"tag,omitempty"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	FlashcardCount int64 `gorm:"-" json:"flashcardCount"`
}

func (FlashcardSet) TableName() string {
	return "flashcard_sets"
}

func (s *FlashcardSet) VisibleTo(userID uint) bool {
	return s.Status != SetPrivate || s.AuthorID == userID
}
