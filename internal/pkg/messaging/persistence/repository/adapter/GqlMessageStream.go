package adapter

import (
	"context"
	"encoding/json"

	"github.com/Chizihn/glubon-admin/internal/infrastructure/graphql"
	messaging "github.com/Chizihn/glubon-admin/internal/pkg/messaging/application/domain"
	repository "github.com/Chizihn/glubon-admin/internal/pkg/messaging/persistence/repository/port"
)

type GqlMessageStream struct {
	sub *graphql.Subscriber
}

func NewGqlMessageStream(sub *graphql.Subscriber) *GqlMessageStream {
	return &GqlMessageStream{sub: sub}
}

var _ repository.MessageStream = (*GqlMessageStream)(nil)

func (s *GqlMessageStream) Stream(ctx context.Context, conversationID string, fn func(messaging.Message) error) error {
	return s.sub.Subscribe(ctx, MessageSent, graphql.Vars{"conversationId": conversationID}, func(data json.RawMessage) error {
		var ev struct {
			MessageSent messaging.Message `json:"messageSent"`
		}
		if err := json.Unmarshal(data, &ev); err != nil {
			return err
		}
		return fn(ev.MessageSent)
	})
}
