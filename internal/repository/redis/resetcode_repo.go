package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultResetCodeTTL = 5 * time.Minute
	ResetCodePrefix     = "auth:code:reset"

	PendingSuffix   = "pending"
	ConfirmedSuffix = "confirmed"
)

var (
	ErrCodeNotFound        = errors.New("reset code not found")
	ErrCodeDelFailed       = errors.New("reset code delete failed")
	ErrCodePendingFailed   = errors.New("reset code pending failed")
	ErrCodeConfirmedFailed = errors.New("reset code confirm failed")
)

// ResetCodeRepository holds password-reset codes in two phases: the code is
// written as pending before the mail goes out and promoted to confirmed only
// after a successful send, so unsent codes never validate.
type ResetCodeRepository struct{}

func (r *ResetCodeRepository) PutPending(email, code string) error {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, PendingSuffix, email)
	if err := Client.Set(context.Background(), key, code, DefaultResetCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// Confirm promotes pending to confirmed atomically: read, copy with TTL,
// delete the source.
func (r *ResetCodeRepository) Confirm(email string) error {
	srcKey := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, PendingSuffix, email)
	dstKey := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, ConfirmedSuffix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultResetCodeTTL / time.Millisecond)
	res := Client.Eval(context.Background(), script, []string{srcKey, dstKey}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

func (r *ResetCodeRepository) DeletePending(email string) error {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, PendingSuffix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}

func (r *ResetCodeRepository) GetConfirmed(email string) (string, error) {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, ConfirmedSuffix, email)
	val, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		return "", ErrCodeNotFound
	}
	return val, nil
}

func (r *ResetCodeRepository) DeleteConfirmed(email string) error {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, ConfirmedSuffix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}
