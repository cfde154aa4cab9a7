package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"holiday-api/pkg/utils"
)

// s3API is the part of *s3.Client the store needs.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3PictureStore struct {
	client        s3API
	bucket        string
	folder        string
	defaultFolder string
	maxSize       int64
}

// NewS3Client builds a client from static keys when given, the default
// credential chain otherwise. endpoint targets S3-compatible providers.
func NewS3Client(ctx context.Context, region, accessKey, secretKey, endpoint string) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewS3PictureStore(client s3API, bucket, folder, defaultFolder string, maxSize int64) *S3PictureStore {
	return &S3PictureStore{
		client:        client,
		bucket:        bucket,
		folder:        folder,
		defaultFolder: defaultFolder,
		maxSize:       maxSize,
	}
}

func (s *S3PictureStore) IsDefault(p string) bool {
	return isUnder(p, s.defaultFolder)
}

func (s *S3PictureStore) Store(ctx context.Context, pic *Picture) (string, error) {
	ext, data, err := readPicture(pic, s.maxSize)
	if err != nil {
		return "", err
	}

	key := path.Join(s.folder, uuid.NewString()+ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(allowedPictureTypes[ext]),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object: %v", utils.ErrPictureStorage, err)
	}

	log.Debug().Str("bucket", s.bucket).Str("key", key).Msg("Picture uploaded")
	return key, nil
}

func (s *S3PictureStore) Delete(ctx context.Context, p string) error {
	if p == "" || s.IsDefault(p) {
		return nil
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(p),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return utils.ErrPictureNotFound
		}
		return fmt.Errorf("%w: head object: %v", utils.ErrPictureStorage, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(p),
	}); err != nil {
		return fmt.Errorf("%w: delete object: %v", utils.ErrPictureStorage, err)
	}
	return nil
}
