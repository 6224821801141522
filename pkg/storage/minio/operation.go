package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

func (p *MinIO) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey

	_, err := p.S3Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(p.Config.BucketName),
		Key:         aws.String(pathKey),
		Body:        file,
		ContentType: aws.String(cType),
	})
	if err != nil {
		return "", errors.Wrap(err, "minio")
	}

	return pathKey, nil
}

func (p *MinIO) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	return p.SendFile(pathKey, bytes.NewReader(content), "application/octet-stream", modTime)
}

func (p *MinIO) PublicURL(pathKey string) string {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	return fmt.Sprintf("%s/%s/%s", p.endpoint(), p.Config.BucketName, pathKey)
}
