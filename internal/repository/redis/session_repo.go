package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	SessionTokenPrefix = "session:user:token"
	SessionTokenExpire = 60 * 30
)

// SessionRepository pins the single active access token per user; logging
// in elsewhere invalidates the previous session.
type SessionRepository struct{}

func (r *SessionRepository) AddToken(userID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	if err := Client.Set(context.Background(), key, token, time.Second*SessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetToken(userID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) ExtendToken(userID uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	_, err := Client.Expire(context.Background(), key, time.Second*SessionTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteToken(userID uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, userID)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
