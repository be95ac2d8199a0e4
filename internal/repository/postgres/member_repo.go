package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Community_Hub/internal/model"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// Join inserts the membership idempotently: an existing (community, user)
// pair is left untouched. member_count moves only when a new active
// membership actually lands.
func (r *MembershipRepository) Join(ctx context.Context, member *model.Membership) (bool, error) {
	var joined bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(member)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		joined = true
		if member.Status == model.MemberActive {
			if err := adjustMemberCount(tx, member.CommunityID, +1); err != nil {
				return err
			}
		}
		return InsertTx(tx, "joined", member.CommunityID, member.UserID,
			map[string]any{"status": member.Status})
	})
	return joined, err
}

// Leave hard-deletes the membership; idempotent when no row exists.
func (r *MembershipRepository) Leave(ctx context.Context, communityID, userID uint64) (bool, error) {
	var left bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member model.Membership
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("community_id = ? AND user_id = ?", communityID, userID).
			First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&member).Error; err != nil {
			return err
		}
		left = true
		if member.Status == model.MemberActive {
			if err := adjustMemberCount(tx, communityID, -1); err != nil {
				return err
			}
		}
		return InsertTx(tx, "left", communityID, userID, nil)
	})
	return left, err
}

// Find returns (nil, nil) when the user holds no membership.
func (r *MembershipRepository) Find(communityID, userID uint64) (*model.Membership, error) {
	var member model.Membership
	err := r.DB.Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByUser returns the user's active memberships, most recently joined
// first, with their communities attached.
func (r *MembershipRepository) ListByUser(userID uint64) ([]model.Membership, error) {
	var list []model.Membership
	err := r.DB.Preload("Community").
		Where("user_id = ? AND status = ?", userID, model.MemberActive).
		Order("joined_at DESC").
		Find(&list).Error
	return list, err
}

func (r *MembershipRepository) ListByCommunity(communityID uint64) ([]model.Membership, error) {
	var list []model.Membership
	err := r.DB.Preload("User").
		Where("community_id = ?", communityID).
		Order("joined_at ASC").
		Find(&list).Error
	return list, err
}

// ActiveCommunityIDs resolves the community scope for the feed.
func (r *MembershipRepository) ActiveCommunityIDs(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.Membership{}).
		Where("user_id = ? AND status = ?", userID, model.MemberActive).
		Pluck("community_id", &ids).Error
	return ids, err
}

func (r *MembershipRepository) IsActiveMember(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Membership{}).
		Where("community_id = ? AND user_id = ? AND status = ?", communityID, userID, model.MemberActive).
		Count(&count).Error
	return count > 0, err
}

func adjustMemberCount(tx *gorm.DB, communityID uint64, delta int64) error {
	return tx.Model(&model.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count", gorm.Expr("GREATEST(0, member_count + ?)", delta)).Error
}
