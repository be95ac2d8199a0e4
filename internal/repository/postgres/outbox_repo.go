package postgres

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"Community_Hub/internal/model"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// InsertTx writes an activity event inside the caller's transaction so the
// event exists iff the action committed.
func InsertTx(tx *gorm.DB, event string, communityID, userID uint64, extra map[string]any) error {
	body := map[string]any{
		"event_time":   time.Now().UTC().Format(time.RFC3339Nano),
		"community_id": communityID,
		"user_id":      userID,
	}
	for k, v := range extra {
		body[k] = v
	}
	payload, _ := json.Marshal(body)
	ob := &model.ActivityOutbox{
		EventType:   event,
		CommunityID: communityID,
		UserID:      userID,
		Payload:     string(payload),
		Status:      model.OutboxPending,
	}
	return tx.Create(ob).Error
}

func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.ActivityOutbox, error) {
	var list []model.ActivityOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = ?", model.OutboxPending).
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ActivityOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": model.OutboxFailed, "retry": gorm.Expr("retry + 1")}).Error
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ActivityOutbox{}).Where("id = ?", id).
		Update("status", model.OutboxSent).Error
}
