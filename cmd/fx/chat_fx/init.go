package chat_fx

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"holiday-api/internal/config"
	"holiday-api/internal/infra"
	"holiday-api/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideRedis, provideChatRelay, provideChatHub),
	fx.Invoke(startChatHub),
)

func provideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	client, err := infra.InitRedis(cfg.Redis)
	if err != nil || client == nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideChatRelay(cfg *config.Config, client *redis.Client) services.ChatRelay {
	if client == nil {
		return nil
	}
	return services.NewRedisChatRelay(client, cfg.Redis.Channel)
}

func provideChatHub(messages services.MessageServiceInterface, relay services.ChatRelay) *services.ChatHub {
	return services.NewChatHub(messages, relay)
}

func startChatHub(lc fx.Lifecycle, hub *services.ChatHub) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return hub.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
