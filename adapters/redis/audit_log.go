package redis

import (
	"context"
	"encoding/json"

	"github.com/m7mdrf3t/LoadBalancer/domain"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/go-redis/redis/v8"
)

const auditKey = "audit_log"

type auditLog struct {
	client redis.UniversalClient
	cap    int64
}

// NewAuditLog creates an AuditLog backed by a Redis list (key: audit_log,
// newest first, trimmed to cap entries on every write).
func NewAuditLog(client redis.UniversalClient, cap int64) *auditLog {
	return &auditLog{
		client: client,
		cap:    cap,
	}
}

func (l *auditLog) Record(ctx context.Context, event domain.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return service.NewInternalServerError("failed to marshal audit event", err)
	}

	if err := l.client.LPush(ctx, auditKey, data).Err(); err != nil {
		return service.NewInternalServerError("failed to push audit event", err)
	}
	if err := l.client.LTrim(ctx, auditKey, 0, l.cap-1).Err(); err != nil {
		return service.NewInternalServerError("failed to trim audit log", err)
	}

	return nil
}

func (l *auditLog) Read(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		return []domain.AuditEvent{}, nil
	}

	entries, err := l.client.LRange(ctx, auditKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, service.NewInternalServerError("failed to read audit log", err)
	}

	events := make([]domain.AuditEvent, 0, len(entries))
	for _, entry := range entries {
		var event domain.AuditEvent
		if err := json.Unmarshal([]byte(entry), &event); err != nil {
			events = append(events, domain.AuditEvent{Type: domain.EventCorruptData})
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func (l *auditLog) Clear(ctx context.Context) error {
	if err := l.client.Del(ctx, auditKey).Err(); err != nil {
		return service.NewInternalServerError("failed to clear audit log", err)
	}
	return nil
}
