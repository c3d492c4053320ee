package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/crosspost/configs"
)

// MediaStorage keeps the bytes of uploaded files until they are posted or
// discarded.
type MediaStorage interface {
	Save(ctx context.Context, key string, file []byte, filetype string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewMediaStorage picks R2 when it is configured and the local media dir otherwise.
func NewMediaStorage(c cfg.Config) (MediaStorage, error) {
	if c.R2.Enabled() {
		return NewR2Service(c)
	}
	return NewLocalMediaStorage(c.MediaDir)
}

type R2Service struct {
	config cfg.Config
	client *s3.Client
}

func NewR2Service(c cfg.Config) (*R2Service, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.R2.AccessKey, c.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", c.R2.AccountID))
	})
	return &R2Service{config: c, client: client}, nil
}

func (r *R2Service) Save(ctx context.Context, key string, file []byte, filetype string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(filetype),
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return strings.TrimSuffix(r.config.R2.PublicURL, "/") + "/" + key, nil
}

func (r *R2Service) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.config.R2.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type localMediaStorage struct {
	dir string
}

func NewLocalMediaStorage(dir string) (MediaStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &localMediaStorage{dir: dir}, nil
}

func (l *localMediaStorage) Save(ctx context.Context, key string, file []byte, filetype string) (string, error) {
	if err := os.WriteFile(filepath.Join(l.dir, filepath.Base(key)), file, 0644); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return "/media/" + key, nil
}

func (l *localMediaStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(l.dir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		slog.Info(err.Error())
		return err
	}
	return nil
}
