package postgres

import (
	"errors"

	"gorm.io/gorm"

	"Community_Hub/internal/model"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create inserts the community and the creator's admin membership in one
// transaction, so a community can never exist without an admin.
func (r *CommunityRepository) Create(c *model.Community) (*model.Community, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		c.MemberCount = 1
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		member := &model.Membership{
			CommunityID: c.ID,
			UserID:      c.CreatorID,
			Role:        model.RoleAdmin,
			Status:      model.MemberActive,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return InsertTx(tx, "created", c.ID, c.CreatorID, map[string]any{"slug": c.Slug})
	})
	return c, err
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

// FindBySlug returns (nil, nil) when the slug does not exist; absence is a
// normal answer here, not an error.
func (r *CommunityRepository) FindBySlug(slug string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("slug = ?", slug).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *CommunityRepository) SlugTaken(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Community{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
