// Package minio talks to MinIO through its S3-compatible endpoint.
package minio

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`
}

type MinIO struct {
	S3Client *s3.Client
	Config   *Config
	logger   *zap.Logger
}

var clients = make(map[string]*MinIO)

func NewClient(conf *Config) (*MinIO, error) {
	key := conf.Endpoint + "#" + conf.AccessKeyID
	if c, ok := clients[key]; ok {
		return c, nil
	}

	region := conf.Region
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, errors.Wrap(err, "minio")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(conf.Endpoint)
		// MinIO buckets live under the path, not a subdomain.
		o.UsePathStyle = true
	})

	c := &MinIO{
		S3Client: client,
		Config:   conf,
		logger:   zap.NewNop(),
	}
	clients[key] = c
	return c, nil
}

func (p *MinIO) endpoint() string {
	return strings.TrimSuffix(p.Config.Endpoint, "/")
}
