package service

import (
	"strings"

	"Community_Hub/internal/model"
	"Community_Hub/internal/repository/postgres"
)

type PostService struct {
	repo       *postgres.PostRepository
	memberRepo *postgres.MembershipRepository
	commRepo   *postgres.CommunityRepository
}

func NewPostService() *PostService {
	return &PostService{
		repo:       &postgres.PostRepository{DB: postgres.DB},
		memberRepo: &postgres.MembershipRepository{DB: postgres.DB},
		commRepo:   &postgres.CommunityRepository{DB: postgres.DB},
	}
}

type CreatePostInput struct {
	CommunityID uint64
	CategoryID  *uint64
	Title       string
	Content     string
}

// Create publishes immediately unless the community requires post approval
// and the author is not staff, in which case the post lands pending and
// hidden until a moderator approves it. The bool reports that pending state.
func (s *PostService) Create(userID uint64, in CreatePostInput) (*model.Post, bool, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, false, ErrEmptyFields
	}

	member, err := s.memberRepo.Find(in.CommunityID, userID)
	if err != nil {
		return nil, false, err
	}
	if member == nil || member.Status != model.MemberActive {
		return nil, false, ErrNotMember
	}

	community, err := s.commRepo.FindByID(in.CommunityID)
	if err != nil {
		return nil, false, err
	}

	status := model.PostPublished
	if community.Settings.PostsNeedApproval && !member.IsStaff() {
		status = model.PostPending
	}

	post := &model.Post{
		CommunityID: in.CommunityID,
		CategoryID:  in.CategoryID,
		AuthorID:    userID,
		Title:       title,
		Content:     content,
		Status:      status,
	}
	if err = s.repo.Create(post); err != nil {
		return nil, false, err
	}
	return post, status == model.PostPending, nil
}

func (s *PostService) ListByCommunity(communityID uint64, page, size int) ([]model.Post, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	offset := (page - 1) * size
	return s.repo.ListByCommunity(communityID, offset, size)
}

func (s *PostService) ListPending(operatorID, communityID uint64) ([]model.Post, error) {
	if err := s.requireStaff(communityID, operatorID); err != nil {
		return nil, err
	}
	return s.repo.ListPending(communityID)
}

// Approve flips a pending post to published; idempotent for posts that are
// already published.
func (s *PostService) Approve(operatorID, postID uint64) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return err
	}
	if err = s.requireStaff(post.CommunityID, operatorID); err != nil {
		return err
	}
	_, err = s.repo.Approve(postID)
	return err
}

func (s *PostService) SetPinned(operatorID, postID uint64, pinned bool) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return err
	}
	if err = s.requireStaff(post.CommunityID, operatorID); err != nil {
		return err
	}
	return s.repo.SetPinned(postID, pinned)
}

// Delete is idempotent: deleting an already-deleted or missing post
// succeeds; only a live post the operator may not touch errors.
func (s *PostService) Delete(userID, postID uint64) error {
	affected, err := s.repo.DeleteWithPermission(postID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.repo.FindByID(postID); err != nil {
			return nil
		}
		return ErrNotStaff
	}
	return nil
}

func (s *PostService) requireStaff(communityID, userID uint64) error {
	member, err := s.memberRepo.Find(communityID, userID)
	if err != nil {
		return err
	}
	if member == nil || !member.IsStaff() {
		return ErrNotStaff
	}
	return nil
}
