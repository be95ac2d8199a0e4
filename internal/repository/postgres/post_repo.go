package postgres

import (
	"gorm.io/gorm"

	"Community_Hub/internal/model"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ? AND status <> ?", id, model.PostDeleted).Error
	return &post, err
}

// ListByCommunity returns published posts, pinned first, then newest.
func (r *PostRepository) ListByCommunity(communityID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").Preload("Category").
		Where("community_id = ? AND status = ?", communityID, model.PostPublished).
		Order("is_pinned DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListByCommunities feeds the cross-community view; capped, newest first.
func (r *PostRepository) ListByCommunities(communityIDs []uint64, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").
		Where("community_id IN ? AND status = ?", communityIDs, model.PostPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListPending(communityID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Preload("Author").
		Where("community_id = ? AND status = ?", communityID, model.PostPending).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *PostRepository) Approve(postID uint64) (int64, error) {
	res := r.DB.Model(&model.Post{}).
		Where("id = ? AND status = ?", postID, model.PostPending).
		Update("status", model.PostPublished)
	return res.RowsAffected, res.Error
}

func (r *PostRepository) SetPinned(postID uint64, pinned bool) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ? AND status <> ?", postID, model.PostDeleted).
		Update("is_pinned", pinned).Error
}

// DeleteWithPermission soft-deletes in one statement: the author or a staff
// member of the post's community may delete; idempotent for already-deleted
// rows.
func (r *PostRepository) DeleteWithPermission(postID, operatorID uint64) (int64, error) {
	tx := r.DB.Exec(`
		UPDATE posts p
		SET status = ?
		FROM (SELECT id, community_id, author_id FROM posts WHERE id = ?) x
		WHERE p.id = x.id AND p.status <> ?
		  AND (x.author_id = ? OR EXISTS (
		       SELECT 1 FROM memberships m
		       WHERE m.community_id = x.community_id AND m.user_id = ?
		         AND m.role IN (?, ?)
		  ))`,
		model.PostDeleted, postID, model.PostDeleted, operatorID, operatorID,
		model.RoleAdmin, model.RoleModerator,
	)
	return tx.RowsAffected, tx.Error
}
