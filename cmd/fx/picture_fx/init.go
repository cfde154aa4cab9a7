package picture_fx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"holiday-api/internal/config"
	"holiday-api/internal/services"
)

var Module = fx.Provide(providePictureStore)

func providePictureStore(cfg *config.Config) (services.PictureStore, error) {
	p := cfg.Pictures

	switch p.Backend {
	case "", "local":
		log.Info().Str("root", p.RootPath).Msg("Using local picture storage")
		return services.NewLocalPictureStore(p.RootPath, p.Folder, p.DefaultFolder, p.MaxFileSize), nil
	case "s3":
		if cfg.AWS.S3Bucket == "" {
			return nil, fmt.Errorf("pictures backend s3 needs aws.s3_bucket")
		}
		client, err := services.NewS3Client(context.Background(), cfg.AWS.Region, cfg.AWS.AccessKey, cfg.AWS.SecretKey, cfg.AWS.Endpoint)
		if err != nil {
			return nil, err
		}
		log.Info().Str("bucket", cfg.AWS.S3Bucket).Msg("Using S3 picture storage")
		return services.NewS3PictureStore(client, cfg.AWS.S3Bucket, p.Folder, p.DefaultFolder, p.MaxFileSize), nil
	default:
		return nil, fmt.Errorf("unknown pictures backend %q", p.Backend)
	}
}
