package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session"

func sessionKey(requesterID string) string {
	return sessionPrefix + ":" + requesterID
}

type sessionStore struct {
	client redis.UniversalClient
}

// NewSessionStore creates a SessionStore that keeps session records in Redis
// (key: session:{requesterID}, value: JSON, expiry: session TTL).
func NewSessionStore(client redis.UniversalClient) *sessionStore {
	return &sessionStore{
		client: client,
	}
}

func (s *sessionStore) Get(ctx context.Context, requesterID string) (domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(requesterID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, service.NewEntityNotFoundError(fmt.Sprintf("no session for requester '%s'", requesterID), err)
		}
		return domain.Session{}, service.NewInternalServerError("failed to get session from redis", err)
	}

	var v domain.Session
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Session{}, service.NewCorruptStateError("session record does not decode", err)
	}
	if v.RequesterID == "" || v.SlotID == "" {
		return domain.Session{}, service.NewCorruptStateError("session record fails structural validation", nil)
	}

	return v, nil
}

func (s *sessionStore) Put(ctx context.Context, session domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return service.NewInternalServerError("failed to marshal session", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.RequesterID), data, ttl).Err(); err != nil {
		return service.NewInternalServerError("failed to write session to redis", err)
	}

	return nil
}

func (s *sessionStore) Delete(ctx context.Context, requesterID string) error {
	if err := s.client.Del(ctx, sessionKey(requesterID)).Err(); err != nil {
		return service.NewInternalServerError("failed to delete session from redis", err)
	}
	return nil
}

func (s *sessionStore) DeleteAll(ctx context.Context, requesterIDs []string) error {
	if len(requesterIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(requesterIDs))
	for _, id := range requesterIDs {
		keys = append(keys, sessionKey(id))
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return service.NewInternalServerError("failed to delete sessions from redis", err)
	}
	return nil
}
