// Package session keeps the server-side record of live logins in Redis.
// A login writes the issued JWT keyed by user id; logout deletes it, which
// invalidates the token before its expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession means there is no live session for the user.
var ErrNoSession = errors.New("session not found")

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func sessionKey(userID int) string {
	return fmt.Sprintf("session:%d", userID)
}

func (s *Store) Put(ctx context.Context, userID int, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(userID), token, ttl).Err()
}

func (s *Store) Get(ctx context.Context, userID int) (string, error) {
	token, err := s.rdb.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", err
	}
	return token, nil
}

func (s *Store) Delete(ctx context.Context, userID int) error {
	return s.rdb.Del(ctx, sessionKey(userID)).Err()
}
