package aws_s3

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

func (p *S3) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	bucket := p.Config.BucketName
	ctx := context.Background()

	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey

	_, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(pathKey),
		Body:        file,
		ContentType: aws.String(cType),
	})
	if err != nil {
		return "", errors.Wrap(err, "aws_s3")
	}

	return pathKey, nil
}

func (p *S3) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	return p.SendFile(pathKey, bytes.NewReader(content), "application/octet-stream", modTime)
}

func (p *S3) PublicURL(pathKey string) string {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.Config.BucketName, p.Config.Region, pathKey)
}
