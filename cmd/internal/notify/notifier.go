package notify

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Notifier is the outbound notification channel. Callers treat it as
// fire-and-forget: an enqueue failure is theirs to log and swallow.
type Notifier interface {
	ConfirmCheckin(ctx context.Context, payload ConfirmationPayload) error
}

type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier(client *asynq.Client) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) ConfirmCheckin(ctx context.Context, payload ConfirmationPayload) error {
	task, err := NewConfirmationTask(payload)
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue("low"),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	return err
}

// NoopNotifier stands in when no Redis backend is configured. Check-ins
// still succeed, confirmations are just never sent.
type NoopNotifier struct{}

func (NoopNotifier) ConfirmCheckin(ctx context.Context, payload ConfirmationPayload) error {
	return nil
}

// Ping verifies the notification backend is reachable at startup.
func Ping(ctx context.Context, addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	return client.Ping(ctx).Err()
}
