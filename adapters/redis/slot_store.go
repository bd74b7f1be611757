package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

const (
	slotsKey = "slots"

	activeSuffix = ":sessions"
	closedSuffix = ":closed_sessions"
	usersSuffix  = ":users"
)

func activeKey(id string) string { return "slot:" + id + activeSuffix }
func closedKey(id string) string { return "slot:" + id + closedSuffix }
func usersKey(id string) string  { return "slot:" + id + usersSuffix }

// storedSlot is the persisted form of a descriptor. Enabled is a pointer so
// that records written before the flag existed decode as enabled; the
// default is applied here, once, not on every read path.
type storedSlot struct {
	ID         string `json:"id"`
	Credential string `json:"credential"`
	TargetID   string `json:"target_id"`
	Capacity   int64  `json:"capacity"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

func decodeSlot(data []byte) (domain.Slot, error) {
	var v storedSlot
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Slot{}, fmt.Errorf("can't unmarshal slot record: %w", err)
	}
	if v.ID == "" || v.Capacity <= 0 {
		return domain.Slot{}, fmt.Errorf("slot record fails structural validation (id=%q capacity=%d)", v.ID, v.Capacity)
	}

	enabled := true
	if v.Enabled != nil {
		enabled = *v.Enabled
	}

	return domain.Slot{
		ID:         v.ID,
		Credential: v.Credential,
		TargetID:   v.TargetID,
		Capacity:   v.Capacity,
		Enabled:    enabled,
	}, nil
}

func encodeSlot(slot domain.Slot) ([]byte, error) {
	return json.Marshal(storedSlot{
		ID:         slot.ID,
		Credential: slot.Credential,
		TargetID:   slot.TargetID,
		Capacity:   slot.Capacity,
		Enabled:    &slot.Enabled,
	})
}

// slotStore keeps descriptors as fields of a single hash and the auxiliary
// counters/sets under per-slot keys. It implements interfaces.SlotStore and
// interfaces.SlotCounters.
type slotStore struct {
	client redis.UniversalClient
	logger log.Logger
}

// NewSlotStore creates a SlotStore/SlotCounters backed by Redis
// (hash: slots, field: {id}, value: JSON descriptor).
func NewSlotStore(client redis.UniversalClient, logger log.Logger) *slotStore {
	return &slotStore{
		client: client,
		logger: log.WithPrefix(logger, "component", "SlotStore"),
	}
}

func (s *slotStore) Add(ctx context.Context, slot domain.Slot) error {
	data, err := encodeSlot(slot)
	if err != nil {
		return service.NewInternalServerError("failed to marshal slot", err)
	}

	created, err := s.client.HSetNX(ctx, slotsKey, slot.ID, data).Result()
	if err != nil {
		return service.NewInternalServerError("failed to write slot to redis", err)
	}
	if !created {
		return service.NewConflictError(fmt.Sprintf("slot '%s' already exists", slot.ID), nil)
	}

	// Descriptor and auxiliary structures form one logical unit; the store
	// applies them as separate commands (see the consistency caveat in the
	// package docs).
	if err := s.client.Set(ctx, activeKey(slot.ID), 0, 0).Err(); err != nil {
		return service.NewInternalServerError("failed to init active counter", err)
	}
	if err := s.client.Set(ctx, closedKey(slot.ID), 0, 0).Err(); err != nil {
		return service.NewInternalServerError("failed to init closed counter", err)
	}
	if err := s.client.Del(ctx, usersKey(slot.ID)).Err(); err != nil {
		return service.NewInternalServerError("failed to init user set", err)
	}

	return nil
}

func (s *slotStore) Get(ctx context.Context, id string) (domain.Slot, error) {
	data, err := s.client.HGet(ctx, slotsKey, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Slot{}, service.NewEntityNotFoundError(fmt.Sprintf("slot '%s' not found", id), err)
		}
		return domain.Slot{}, service.NewInternalServerError("failed to get slot from redis", err)
	}

	slot, err := decodeSlot([]byte(data))
	if err != nil {
		return domain.Slot{}, service.NewCorruptStateError(fmt.Sprintf("slot '%s' record is corrupt", id), err)
	}

	return slot, nil
}

func (s *slotStore) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := s.client.HExists(ctx, slotsKey, id).Result()
	if err != nil {
		return false, service.NewInternalServerError("failed to check slot existence", err)
	}
	return ok, nil
}

func (s *slotStore) Put(ctx context.Context, slot domain.Slot) error {
	data, err := encodeSlot(slot)
	if err != nil {
		return service.NewInternalServerError("failed to marshal slot", err)
	}

	if err := s.client.HSet(ctx, slotsKey, slot.ID, data).Err(); err != nil {
		return service.NewInternalServerError("failed to write slot to redis", err)
	}

	return nil
}

func (s *slotStore) Remove(ctx context.Context, id string) error {
	removed, err := s.client.HDel(ctx, slotsKey, id).Result()
	if err != nil {
		return service.NewInternalServerError("failed to delete slot from redis", err)
	}
	if removed == 0 {
		return service.NewEntityNotFoundError(fmt.Sprintf("slot '%s' not found", id), nil)
	}

	if err := s.client.Del(ctx, activeKey(id), closedKey(id), usersKey(id)).Err(); err != nil {
		return service.NewInternalServerError("failed to purge slot state", err)
	}

	return nil
}

// List returns all decodable descriptors sorted by id, so callers get a
// stable iteration order out of an unordered hash. Corrupt entries are
// skipped with a warning instead of failing the listing.
func (s *slotStore) List(ctx context.Context) ([]domain.Slot, error) {
	fields, err := s.client.HGetAll(ctx, slotsKey).Result()
	if err != nil {
		return nil, service.NewInternalServerError("failed to list slots from redis", err)
	}

	slots := make([]domain.Slot, 0, len(fields))
	for id, data := range fields {
		slot, err := decodeSlot([]byte(data))
		if err != nil {
			level.Warn(s.logger).Log("msg", "skipping corrupt slot record", "slot_id", id, "err", err)
			continue
		}
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	return slots, nil
}

func (s *slotStore) ActiveCount(ctx context.Context, id string) (int64, error) {
	return s.counter(ctx, activeKey(id))
}

func (s *slotStore) IncrActive(ctx context.Context, id string) (int64, error) {
	n, err := s.client.Incr(ctx, activeKey(id)).Result()
	if err != nil {
		return 0, service.NewInternalServerError("failed to increment active counter", err)
	}
	return n, nil
}

func (s *slotStore) DecrActive(ctx context.Context, id string) (int64, error) {
	n, err := s.client.Decr(ctx, activeKey(id)).Result()
	if err != nil {
		return 0, service.NewInternalServerError("failed to decrement active counter", err)
	}
	return n, nil
}

func (s *slotStore) ResetActive(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, activeKey(id), 0, 0).Err(); err != nil {
		return service.NewInternalServerError("failed to reset active counter", err)
	}
	return nil
}

func (s *slotStore) AddClosed(ctx context.Context, id string, n int64) error {
	if n == 0 {
		return nil
	}
	if err := s.client.IncrBy(ctx, closedKey(id), n).Err(); err != nil {
		return service.NewInternalServerError("failed to bump closed counter", err)
	}
	return nil
}

func (s *slotStore) ClosedCount(ctx context.Context, id string) (int64, error) {
	return s.counter(ctx, closedKey(id))
}

func (s *slotStore) AddUser(ctx context.Context, id string, requesterID string) error {
	if err := s.client.SAdd(ctx, usersKey(id), requesterID).Err(); err != nil {
		return service.NewInternalServerError("failed to add user to slot set", err)
	}
	return nil
}

func (s *slotStore) RemoveUser(ctx context.Context, id string, requesterID string) error {
	if err := s.client.SRem(ctx, usersKey(id), requesterID).Err(); err != nil {
		return service.NewInternalServerError("failed to remove user from slot set", err)
	}
	return nil
}

func (s *slotStore) Users(ctx context.Context, id string) ([]string, error) {
	users, err := s.client.SMembers(ctx, usersKey(id)).Result()
	if err != nil {
		return nil, service.NewInternalServerError("failed to read slot user set", err)
	}
	return users, nil
}

func (s *slotStore) ClearUsers(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, usersKey(id)).Err(); err != nil {
		return service.NewInternalServerError("failed to clear slot user set", err)
	}
	return nil
}

// counter reads an integer key, treating an absent key as zero.
func (s *slotStore) counter(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, service.NewInternalServerError("failed to read counter", err)
	}
	return n, nil
}
