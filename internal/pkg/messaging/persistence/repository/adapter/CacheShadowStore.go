package adapter

import (
	"context"
	"time"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

// CacheShadowStore keeps previews in the graphql client's cache, next to the lists they patch.
type CacheShadowStore struct {
	client *graphql.Client
	ttl    time.Duration
}

func NewCacheShadowStore(client *graphql.Client, ttl time.Duration) *CacheShadowStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CacheShadowStore{client: client, ttl: ttl}
}

var _ repository.ShadowStore = (*CacheShadowStore)(nil)

func shadowKey(id string) string { return "conversation:" + id }

func (s *CacheShadowStore) Put(ctx context.Context, conversationID string, sh messaging.Shadow) error {
	return s.client.Patch(ctx, shadowKey(conversationID), sh, s.ttl)
}

func (s *CacheShadowStore) Get(ctx context.Context, conversationID string) (messaging.Shadow, bool) {
	var sh messaging.Shadow
	ok := s.client.Shadow(ctx, shadowKey(conversationID), &sh)
	return sh, ok
}
