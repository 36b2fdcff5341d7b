package operator

import (
	"context"

	"github.com/feesplit/feesplitd/internal/core/ports"
)

func (s *service) AddWebhook(
	ctx context.Context, hook ports.Webhook,
) (string, error) {
	return s.pubsub.AddWebhook(ctx, hook)
}

func (s *service) RemoveWebhook(ctx context.Context, id string) error {
	return s.pubsub.RemoveWebhook(ctx, id)
}

func (s *service) ListWebhooks(
	ctx context.Context, event string,
) ([]ports.WebhookInfo, error) {
	return s.pubsub.ListWebhooks(ctx, event)
}
