package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Community_Hub/internal/model"
)

var ErrEventFull = errors.New("event full")

type EventRepository struct {
	DB *gorm.DB
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, id).Error
	return &event, err
}

func (r *EventRepository) ListByCommunity(communityID uint64) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("community_id = ?", communityID).
		Order("start_date ASC").
		Find(&list).Error
	return list, err
}

func (r *EventRepository) ListByCommunities(communityIDs []uint64, limit int) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("community_id IN ?", communityIDs).
		Order("start_date ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// RSVP upserts the (event, user) attendance row under a lock and moves
// attendees_count by the previous->next status delta, all in one
// transaction. Repeated confirms add nothing; cancelling a confirm
// subtracts exactly once.
func (r *EventRepository) RSVP(ctx context.Context, eventID, userID uint64, status string) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, eventID).Error; err != nil {
			return err
		}

		prev := ""
		var att model.EventAttendee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			First(&att).Error
		switch {
		case err == nil:
			prev = att.Status
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		delta := model.RSVPDelta(prev, status)
		if delta == 0 && prev != "" {
			return nil
		}
		if delta > 0 && event.MaxAttendees != nil && event.AttendeesCount >= int64(*event.MaxAttendees) {
			return ErrEventFull
		}

		if prev == "" {
			att = model.EventAttendee{EventID: eventID, UserID: userID, Status: status}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
		} else if err := tx.Model(&att).Update("status", status).Error; err != nil {
			return err
		}

		if delta != 0 {
			if err := tx.Model(&model.Event{}).
				Where("id = ?", eventID).
				UpdateColumn("attendees_count", gorm.Expr("GREATEST(0, attendees_count + ?)", delta)).Error; err != nil {
				return err
			}
		}
		changed = true
		return InsertTx(tx, "rsvped", event.CommunityID, userID,
			map[string]any{"event_id": eventID, "status": status})
	})
	return changed, err
}
