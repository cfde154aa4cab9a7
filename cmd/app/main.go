package main

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"holiday-api/cmd/fx/activity_fx"
	"holiday-api/cmd/fx/chat_fx"
	"holiday-api/cmd/fx/config_fx"
	"holiday-api/cmd/fx/controllers_fx"
	"holiday-api/cmd/fx/db_fx"
	"holiday-api/cmd/fx/holiday_fx"
	"holiday-api/cmd/fx/invitation_fx"
	"holiday-api/cmd/fx/location_fx"
	"holiday-api/cmd/fx/mail_fx"
	"holiday-api/cmd/fx/memcache_fx"
	"holiday-api/cmd/fx/message_fx"
	"holiday-api/cmd/fx/participant_fx"
	"holiday-api/cmd/fx/picture_fx"
	"holiday-api/cmd/fx/statistics_fx"
	"holiday-api/internal/api/controllers"
	"holiday-api/internal/config"
	"holiday-api/pkg/middleware"
	"holiday-api/pkg/utils"
)

func main() {
	app := fx.New(
		fx.NopLogger,
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		location_fx.Module,
		picture_fx.Module,
		mail_fx.Module,
		participant_fx.Module,
		holiday_fx.Module,
		invitation_fx.Module,
		activity_fx.Module,
		message_fx.Module,
		statistics_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("HTTP server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerDeps struct {
	fx.In

	Config       *config.Config
	Tokens       *utils.JWTManager
	Participants *controllers.ParticipantController
	Holidays     *controllers.HolidayController
	Invitations  *controllers.InvitationController
	Activities   *controllers.ActivityController
	Statistics   *controllers.StatisticsController
	Chat         *controllers.ChatController
}

func ProvideRouter(d routerDeps) *gin.Engine {
	if d.Config.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	// local pictures are served straight from disk
	if p := d.Config.Pictures; p.Backend == "" || p.Backend == "local" {
		r.Static("/"+p.Folder, filepath.Join(p.RootPath, p.Folder))
		if p.DefaultFolder != "" && p.DefaultFolder != p.Folder {
			r.Static("/"+p.DefaultFolder, filepath.Join(p.RootPath, p.DefaultFolder))
		}
	}

	controllers.RegisterRoutes(r, middleware.JWTAuthMiddleware(d.Tokens), controllers.Handlers{
		Participants: d.Participants,
		Holidays:     d.Holidays,
		Invitations:  d.Invitations,
		Activities:   d.Activities,
		Statistics:   d.Statistics,
		Chat:         d.Chat,
	})

	return r
}
