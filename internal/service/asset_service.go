package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/scheduling-console/configs"
	"github.com/maheshrc27/scheduling-console/internal/models"
)

// AssetService turns stored asset references into temporary preview links.
type AssetService interface {
	Enabled() bool
	PreviewURL(ctx context.Context, asset models.PostAsset) (string, error)
}

type assetService struct {
	presigner *s3.PresignClient
	config    cfg.Config
}

// NewAssetService returns a presigning service for S3-compatible storage
// (MinIO, R2), or a disabled one when no storage credentials are configured.
func NewAssetService(ctx context.Context, c cfg.Config) (AssetService, error) {
	if !c.StorageEnabled() {
		return disabledAssetService{}, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.Storage.AccessKey, c.Storage.SecretKey, "")),
		config.WithRegion(c.Storage.Region),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.Storage.Endpoint)
		o.UsePathStyle = true
	})

	return &assetService{presigner: s3.NewPresignClient(client), config: c}, nil
}

func (a *assetService) Enabled() bool {
	return true
}

func (a *assetService) PreviewURL(ctx context.Context, asset models.PostAsset) (string, error) {
	if asset.Bucket == "" || asset.Key == "" {
		return "", errors.New("asset has no storage location")
	}

	req, err := a.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(asset.Bucket),
		Key:    aws.String(asset.Key),
	}, s3.WithPresignExpires(a.config.Storage.URLExpiry))
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return req.URL, nil
}

type disabledAssetService struct{}

func (disabledAssetService) Enabled() bool {
	return false
}

func (disabledAssetService) PreviewURL(context.Context, models.PostAsset) (string, error) {
	return "", nil
}
