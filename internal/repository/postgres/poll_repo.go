package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Community_Hub/internal/model"
)

var (
	ErrAlreadyVoted  = errors.New("already voted")
	ErrUnknownOption = errors.New("option does not belong to poll")
)

type PollRepository struct {
	DB *gorm.DB
}

// CreateWithOptions inserts the poll and its ordered options in one
// transaction; option order is the input index.
func (r *PollRepository) CreateWithOptions(poll *model.Poll, optionTexts []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(poll).Error; err != nil {
			return err
		}
		options := make([]model.PollOption, 0, len(optionTexts))
		for i, text := range optionTexts {
			options = append(options, model.PollOption{
				PollID:     poll.ID,
				OptionText: text,
				Order:      i,
			})
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}
		poll.Options = options
		return nil
	})
}

func (r *PollRepository) FindByID(id uint64) (*model.Poll, error) {
	var poll model.Poll
	err := r.DB.First(&poll, id).Error
	return &poll, err
}

func (r *PollRepository) ListByCommunity(communityID uint64) ([]model.Poll, error) {
	var list []model.Poll
	err := r.DB.Where("community_id = ?", communityID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *PollRepository) ListByCommunities(communityIDs []uint64) ([]model.Poll, error) {
	var list []model.Poll
	err := r.DB.Where("community_id IN ?", communityIDs).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// OptionsByPollIDs fetches the options for a whole page of polls in one
// query, ordered for in-memory grouping.
func (r *PollRepository) OptionsByPollIDs(pollIDs []uint64) ([]model.PollOption, error) {
	var options []model.PollOption
	err := r.DB.Where("poll_id IN ?", pollIDs).
		Order("poll_id ASC, ordinal ASC").
		Find(&options).Error
	return options, err
}

// VotesByUser fetches the viewer's votes across a page of polls in one
// query instead of one existence check per poll.
func (r *PollRepository) VotesByUser(userID uint64, pollIDs []uint64) ([]model.PollVote, error) {
	var votes []model.PollVote
	err := r.DB.Where("user_id = ? AND poll_id IN ?", userID, pollIDs).
		Find(&votes).Error
	return votes, err
}

// Vote records one ballot: the vote rows, the per-option counters and the
// poll total move together in a single transaction, so tallies can never
// drift from the vote rows. A single-choice poll rejects any ballot from a
// user who already voted.
func (r *PollRepository) Vote(ctx context.Context, pollID, userID uint64, optionIDs []uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var poll model.Poll
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&poll, pollID).Error; err != nil {
			return err
		}

		var prior int64
		if err := tx.Model(&model.PollVote{}).
			Where("poll_id = ? AND user_id = ?", pollID, userID).
			Count(&prior).Error; err != nil {
			return err
		}
		if prior > 0 {
			return ErrAlreadyVoted
		}

		var valid int64
		if err := tx.Model(&model.PollOption{}).
			Where("poll_id = ? AND id IN ?", pollID, optionIDs).
			Count(&valid).Error; err != nil {
			return err
		}
		if valid != int64(len(optionIDs)) {
			return ErrUnknownOption
		}

		votes := make([]model.PollVote, 0, len(optionIDs))
		for _, optionID := range optionIDs {
			votes = append(votes, model.PollVote{
				PollID:   pollID,
				OptionID: optionID,
				UserID:   userID,
			})
		}
		if err := tx.Create(&votes).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.PollOption{}).
			Where("id IN ?", optionIDs).
			UpdateColumn("votes_count", gorm.Expr("votes_count + 1")).Error; err != nil {
			return err
		}
		// One ballot bumps the poll total once, however many options it marks.
		if err := tx.Model(&model.Poll{}).
			Where("id = ?", pollID).
			UpdateColumn("total_votes", gorm.Expr("total_votes + 1")).Error; err != nil {
			return err
		}

		return InsertTx(tx, "voted", poll.CommunityID, userID,
			map[string]any{"poll_id": pollID, "options": len(optionIDs)})
	})
}
