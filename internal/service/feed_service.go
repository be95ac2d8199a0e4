package service

import (
	"Community_Hub/internal/model"
	"Community_Hub/internal/repository/postgres"
)

const (
	feedPostLimit  = 20
	feedEventLimit = 10
)

type FeedService struct {
	memberRepo *postgres.MembershipRepository
	postRepo   *postgres.PostRepository
	eventRepo  *postgres.EventRepository
	pollSvc    *PollService
}

func NewFeedService(pollSvc *PollService) *FeedService {
	return &FeedService{
		memberRepo: &postgres.MembershipRepository{DB: postgres.DB},
		postRepo:   &postgres.PostRepository{DB: postgres.DB},
		eventRepo:  &postgres.EventRepository{DB: postgres.DB},
		pollSvc:    pollSvc,
	}
}

type Feed struct {
	Posts       []model.Post       `json:"posts"`
	Events      []model.Event      `json:"events"`
	Polls       []model.Poll       `json:"polls"`
	Memberships []model.Membership `json:"memberships"`
}

// Load aggregates the viewer's communities into one feed. The three content
// fetches are independent queries; a little read skew between them is
// acceptable for a social feed.
func (s *FeedService) Load(userID uint64) (*Feed, error) {
	feed := &Feed{
		Posts:       []model.Post{},
		Events:      []model.Event{},
		Polls:       []model.Poll{},
		Memberships: []model.Membership{},
	}

	ids, err := s.memberRepo.ActiveCommunityIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return feed, nil
	}

	if feed.Posts, err = s.postRepo.ListByCommunities(ids, feedPostLimit); err != nil {
		return nil, err
	}
	if feed.Events, err = s.eventRepo.ListByCommunities(ids, feedEventLimit); err != nil {
		return nil, err
	}

	polls, err := s.pollSvc.repo.ListByCommunities(ids)
	if err != nil {
		return nil, err
	}
	if feed.Polls, err = s.pollSvc.attachDetails(polls, userID); err != nil {
		return nil, err
	}

	if feed.Memberships, err = s.memberRepo.ListByUser(userID); err != nil {
		return nil, err
	}
	return feed, nil
}
