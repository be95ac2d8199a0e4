package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	VoterSetTTL       = 24 * time.Hour
	TallyTTL          = 24 * time.Hour
	VoterSetKeyPrefix = "poll:voters" // set of user ids that voted on a poll
	TallyKeyPrefix    = "poll:total"  // cached total_votes per poll
)

// VoteCacheRepository shortcuts the has-voted check and the poll total on
// the read path. The store stays authoritative; misses fall through.
type VoteCacheRepository struct {
	voterSetTTL time.Duration
	tallyTTL    time.Duration
}

func NewVoteCacheRepository() *VoteCacheRepository {
	return &VoteCacheRepository{
		voterSetTTL: VoterSetTTL,
		tallyTTL:    TallyTTL,
	}
}

func (r *VoteCacheRepository) voterSetKey(pollID uint64) string {
	return fmt.Sprintf("%s:%d", VoterSetKeyPrefix, pollID)
}
func (r *VoteCacheRepository) tallyKey(pollID uint64) string {
	return fmt.Sprintf("%s:%d", TallyKeyPrefix, pollID)
}

// AddVoter runs after a committed ballot: mark the voter and bump the cached
// total. Failures are the caller's to ignore; the cache is advisory.
func (r *VoteCacheRepository) AddVoter(ctx context.Context, userID, pollID uint64) error {
	k := r.voterSetKey(pollID)
	if err := Client.SAdd(ctx, k, userID).Err(); err != nil {
		return err
	}
	_ = Client.Expire(ctx, k, r.voterSetTTL).Err()

	tk := r.tallyKey(pollID)
	if err := Client.Incr(ctx, tk).Err(); err != nil {
		return err
	}
	_ = Client.Expire(ctx, tk, r.tallyTTL).Err()
	return nil
}

// HasVotedCached returns (voted, hit, err); hit is false when the voter set
// is absent and the caller must ask the store.
func (r *VoteCacheRepository) HasVotedCached(ctx context.Context, userID, pollID uint64) (bool, bool, error) {
	k := r.voterSetKey(pollID)
	exists, err := Client.Exists(ctx, k).Result()
	if err != nil {
		return false, false, err
	}
	if exists == 0 {
		return false, false, nil
	}
	b, err := Client.SIsMember(ctx, k, userID).Result()
	return b, true, err
}

func (r *VoteCacheRepository) GetTallyCached(ctx context.Context, pollID uint64) (int64, bool, error) {
	tk := r.tallyKey(pollID)
	val, err := Client.Get(ctx, tk).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	return val, true, err
}

func (r *VoteCacheRepository) SetTally(ctx context.Context, pollID uint64, total int64) error {
	return Client.Set(ctx, r.tallyKey(pollID), total, r.tallyTTL).Err()
}

// WarmHasVoted backfills only when the set already exists, so cold polls do
// not grow unbounded sets.
func (r *VoteCacheRepository) WarmHasVoted(ctx context.Context, userID, pollID uint64, voted bool) {
	k := r.voterSetKey(pollID)
	if ok, _ := Client.Exists(ctx, k).Result(); ok > 0 {
		if voted {
			_ = Client.SAdd(ctx, k, userID).Err()
		} else {
			_ = Client.SRem(ctx, k, userID).Err()
		}
		_ = Client.Expire(ctx, k, r.voterSetTTL).Err()
	}
}

func (r *VoteCacheRepository) DeleteTally(ctx context.Context, pollID uint64) error {
	if err := Client.Del(ctx, r.tallyKey(pollID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
