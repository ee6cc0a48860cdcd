package tenantctx

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session é o estado de tenant de um usuário logado, com vida útil
// atrelada à sessão (não persiste além do TTL nem do sign-out)
type Session struct {
	CurrentTenantID uint   `json:"current_tenant_id"`
	TenantIDs       []uint `json:"tenant_ids"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(userID string) string {
	return "tenantctx:" + userID
}

func (s *Store) Get(ctx context.Context, userID string) (*Session, bool, error) {
	raw, err := s.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// estado corrompido é descartado; a próxima resolução recria
		return nil, false, nil
	}
	return &sess, true, nil
}

func (s *Store) Save(ctx context.Context, userID string, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(userID), raw, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}
