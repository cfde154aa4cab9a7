package services

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type RedisChatRelay struct {
	client  *redis.Client
	channel string
}

func NewRedisChatRelay(client *redis.Client, channel string) *RedisChatRelay {
	return &RedisChatRelay{client: client, channel: channel}
}

func (r *RedisChatRelay) Publish(ctx context.Context, payload []byte) error {
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Subscribe delivers every message on the channel until ctx is done.
func (r *RedisChatRelay) Subscribe(ctx context.Context, deliver func(payload []byte)) error {
	sub := r.client.Subscribe(ctx, r.channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return err
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				deliver([]byte(msg.Payload))
			}
		}
	}()

	log.Info().Str("channel", r.channel).Msg("Chat relay subscribed")
	return nil
}
