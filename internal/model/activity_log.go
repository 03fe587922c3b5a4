package model

type ActivityAction string

const (
	ActionLogin            ActivityAction = "A1"
	ActionLogout           ActivityAction = "A2"
	ActionFlashcardCreated ActivityAction = "B1"
	ActionSetCreated       ActivityAction = "B2"
)

var actionDescriptions = map[ActivityAction]string{
	ActionLogin:            "user logged in",
	ActionLogout:           "user logged out",
	ActionFlashcardCreated: "flashcard created",
	ActionSetCreated:       "flashcard set created",
}

func (a ActivityAction) Description() string {
	return actionDescriptions[a]
}

// swagger:model ActivityLog
type ActivityLog struct {
	BaseModel
	UserID uint           `gorm:"index;not null" json:"userId"`
	Action ActivityAction `gorm:"size:2;not null" json:"action"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
