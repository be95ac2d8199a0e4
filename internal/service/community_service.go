package service

import (
	"context"
	"strings"
	"time"

	"Community_Hub/internal/model"
	"Community_Hub/internal/pkg"
	"Community_Hub/internal/repository/postgres"
)

type CommunityService struct {
	repo       *postgres.CommunityRepository
	memberRepo *postgres.MembershipRepository
}

func NewCommunityService() *CommunityService {
	return &CommunityService{
		repo:       &postgres.CommunityRepository{DB: postgres.DB},
		memberRepo: &postgres.MembershipRepository{DB: postgres.DB},
	}
}

type CreateCommunityInput struct {
	Name        string
	Description string
	LogoURL     string
	MaxMembers  *int
	Settings    *model.Settings
}

// Create derives the slug from the name, suffixing on collision, and grants
// the creator an active admin membership in the same transaction.
func (s *CommunityService) Create(userID uint64, in CreateCommunityInput) (*model.Community, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	slug := pkg.Slugify(name)
	taken, err := s.repo.SlugTaken(slug)
	if err != nil {
		return nil, err
	}
	slug = pkg.UniqueSlug(slug, taken, time.Now())

	settings := model.Settings{}
	if in.Settings != nil {
		settings = *in.Settings
	}

	community := &model.Community{
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		Settings:    settings,
		MaxMembers:  in.MaxMembers,
		CreatorID:   userID,
	}
	if _, err = s.repo.Create(community); err != nil {
		return nil, err
	}
	return community, nil
}

// Join reads the community's approval flag to pick the initial status.
// Returns the status the membership landed with.
func (s *CommunityService) Join(ctx context.Context, userID, communityID uint64) (string, error) {
	community, err := s.repo.FindByID(communityID)
	if err != nil {
		return "", err
	}
	if community.MaxMembers != nil && community.MemberCount >= int64(*community.MaxMembers) {
		return "", ErrCommunityFull
	}

	status := model.MemberActive
	if community.Settings.RequireApproval {
		status = model.MemberPending
	}
	_, err = s.memberRepo.Join(ctx, &model.Membership{
		CommunityID: communityID,
		UserID:      userID,
		Role:        model.RoleMember,
		Status:      status,
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

func (s *CommunityService) Leave(ctx context.Context, userID, communityID uint64) error {
	_, err := s.memberRepo.Leave(ctx, communityID, userID)
	return err
}

func (s *CommunityService) List(page, size int) ([]model.Community, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	offset := (page - 1) * size
	return s.repo.List(offset, size)
}

func (s *CommunityService) ListMine(userID uint64) ([]model.Membership, error) {
	return s.memberRepo.ListByUser(userID)
}

// CommunityDetail bundles what the community page needs in one answer.
type CommunityDetail struct {
	Community *model.Community   `json:"community"`
	Viewer    *model.Membership  `json:"viewer_membership,omitempty"`
	Members   []model.Membership `json:"members"`
}

// GetBySlug returns (nil, nil) when no community has the slug; callers check
// for absence instead of catching an error.
func (s *CommunityService) GetBySlug(slug string, viewerID uint64) (*CommunityDetail, error) {
	community, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, nil
	}

	detail := &CommunityDetail{Community: community}
	if viewerID != 0 {
		viewer, err := s.memberRepo.Find(community.ID, viewerID)
		if err != nil {
			return nil, err
		}
		detail.Viewer = viewer
	}
	members, err := s.memberRepo.ListByCommunity(community.ID)
	if err != nil {
		return nil, err
	}
	detail.Members = members
	return detail, nil
}
