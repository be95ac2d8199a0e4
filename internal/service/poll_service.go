package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Community_Hub/internal/model"
	"Community_Hub/internal/repository/postgres"
	"Community_Hub/internal/repository/redis"
)

type PollService struct {
	repo       *postgres.PollRepository
	memberRepo *postgres.MembershipRepository
	voteCache  *redis.VoteCacheRepository
}

func NewPollService() *PollService {
	return &PollService{
		repo:       &postgres.PollRepository{DB: postgres.DB},
		memberRepo: &postgres.MembershipRepository{DB: postgres.DB},
		voteCache:  redis.NewVoteCacheRepository(),
	}
}

type CreatePollInput struct {
	CommunityID uint64
	Question    string
	PollType    string
	IsAnonymous bool
	ExpiresAt   *time.Time
	Options     []string
}

// CleanOptions trims and drops blank option texts, preserving order.
func CleanOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if t := strings.TrimSpace(o); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *PollService) Create(userID uint64, in CreatePollInput) (*model.Poll, error) {
	question := strings.TrimSpace(in.Question)
	options := CleanOptions(in.Options)
	if question == "" || len(options) < 2 {
		return nil, ErrTooFewOptions
	}
	if in.PollType == "" {
		in.PollType = model.PollSingle
	}
	if in.PollType != model.PollSingle && in.PollType != model.PollMultiple {
		return nil, ErrInvalidType
	}

	ok, err := s.memberRepo.IsActiveMember(in.CommunityID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotMember
	}

	poll := &model.Poll{
		CommunityID: in.CommunityID,
		CreatorID:   userID,
		Question:    question,
		PollType:    in.PollType,
		IsAnonymous: in.IsAnonymous,
		ExpiresAt:   in.ExpiresAt,
	}
	if err = s.repo.CreateWithOptions(poll, options); err != nil {
		return nil, err
	}
	return poll, nil
}

// ValidateSelection normalizes a ballot: deduplicated, non-empty, and for
// single-choice polls exactly one option.
func ValidateSelection(pollType string, optionIDs []uint64) ([]uint64, error) {
	seen := make(map[uint64]bool, len(optionIDs))
	out := make([]uint64, 0, len(optionIDs))
	for _, id := range optionIDs {
		if id != 0 && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptySelection
	}
	if pollType == model.PollSingle && len(out) != 1 {
		return nil, ErrSingleChoice
	}
	return out, nil
}

// AttachPollDetails merges independently fetched options and viewer votes
// into the poll list: options grouped per poll, has_voted true for any poll
// the viewer holds a vote row on.
func AttachPollDetails(polls []model.Poll, options []model.PollOption, viewerVotes []model.PollVote) []model.Poll {
	byPoll := make(map[uint64][]model.PollOption, len(polls))
	for _, o := range options {
		byPoll[o.PollID] = append(byPoll[o.PollID], o)
	}
	voted := make(map[uint64]bool, len(viewerVotes))
	for _, v := range viewerVotes {
		voted[v.PollID] = true
	}
	for i := range polls {
		polls[i].Options = byPoll[polls[i].ID]
		polls[i].HasVoted = voted[polls[i].ID]
	}
	return polls
}

// ListByCommunity loads the community's polls with their options and the
// viewer's vote status, using one batched query per concern instead of a
// round trip per poll.
func (s *PollService) ListByCommunity(communityID, viewerID uint64) ([]model.Poll, error) {
	polls, err := s.repo.ListByCommunity(communityID)
	if err != nil {
		return nil, err
	}
	return s.attachDetails(polls, viewerID)
}

func (s *PollService) attachDetails(polls []model.Poll, viewerID uint64) ([]model.Poll, error) {
	if len(polls) == 0 {
		return polls, nil
	}
	pollIDs := make([]uint64, 0, len(polls))
	for _, p := range polls {
		pollIDs = append(pollIDs, p.ID)
	}
	options, err := s.repo.OptionsByPollIDs(pollIDs)
	if err != nil {
		return nil, err
	}
	var votes []model.PollVote
	if viewerID != 0 {
		if votes, err = s.repo.VotesByUser(viewerID, pollIDs); err != nil {
			return nil, err
		}
	}
	return AttachPollDetails(polls, options, votes), nil
}

// Vote submits a ballot. The repository keeps vote rows and tallies in one
// transaction; the cache is advisory and warmed only after the commit.
func (s *PollService) Vote(ctx context.Context, userID, pollID uint64, optionIDs []uint64) error {
	poll, err := s.repo.FindByID(pollID)
	if err != nil {
		return err
	}
	selection, err := ValidateSelection(poll.PollType, optionIDs)
	if err != nil {
		return err
	}

	if voted, hit, err := s.voteCache.HasVotedCached(ctx, userID, pollID); err == nil && hit && voted {
		return ErrAlreadyVoted
	}

	if err = s.repo.Vote(ctx, pollID, userID, selection); err != nil {
		if errors.Is(err, postgres.ErrAlreadyVoted) {
			s.voteCache.WarmHasVoted(ctx, userID, pollID, true)
			return ErrAlreadyVoted
		}
		return err
	}

	// Cache failures are swallowed; a half-applied increment is dropped so
	// the next tally read rebuilds from the store.
	if err = s.voteCache.AddVoter(ctx, userID, pollID); err != nil {
		_ = s.voteCache.DeleteTally(ctx, pollID)
	}
	return nil
}

// Tally returns the poll's ballot total, preferring the cache and
// backfilling it on a miss.
func (s *PollService) Tally(ctx context.Context, pollID uint64) (int64, error) {
	if v, hit, err := s.voteCache.GetTallyCached(ctx, pollID); err == nil && hit {
		return v, nil
	}
	poll, err := s.repo.FindByID(pollID)
	if err != nil {
		return 0, err
	}
	_ = s.voteCache.SetTally(ctx, pollID, poll.TotalVotes)
	return poll.TotalVotes, nil
}
