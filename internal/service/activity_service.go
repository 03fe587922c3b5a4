package service

import (
	"flashquiz_backend/internal/model"
	"flashquiz_backend/internal/repository"
	"flashquiz_backend/internal/util"
	"flashquiz_backend/pkg/logger"

	"go.uber.org/zap"
)

const activityPageSize = 100

type ActivityService struct {
	Repo *repository.ActivityLogRepository
}

func NewActivityService(repo *repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{Repo: repo}
}

// Record 写入失败只记日志，不影响主流程
func (s *ActivityService) Record(userID uint, action model.ActivityAction) {
	entry := &model.ActivityLog{UserID: userID, Action: action}
	if err := s.Repo.Create(entry); err != nil {
		logger.Log.Warn("Failed to record activity",
			zap.Uint("userID", userID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
	}
}

type ActivityEntry struct {
	Action      model.ActivityAction `json:"action"`
	Description string               `json:"description"`
	Timestamp   string               `json:"timestamp"`
}

func (s *ActivityService) List(userID uint) ([]ActivityEntry, error) {
	entries, err := s.Repo.ListByUser(userID, activityPageSize)
	if err != nil {
		return nil, err
	}

	result := make([]ActivityEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, ActivityEntry{
			Action:      e.Action,
			Description: e.Action.Description(),
			Timestamp:   e.CreatedAt.Format(util.TimeFormat),
		})
	}
	return result, nil
}
