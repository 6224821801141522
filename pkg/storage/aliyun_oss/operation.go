package aliyun_oss

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marcomarassi/note-keeper-service/pkg/fileurl"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

func (p *AliyunOSS) SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error) {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey

	err := p.Bucket.PutObject(pathKey, file, oss.ContentType(cType))
	if err != nil {
		return "", errors.Wrap(err, "aliyun_oss")
	}

	return pathKey, nil
}

func (p *AliyunOSS) SendContent(pathKey string, content []byte, modTime time.Time) (string, error) {
	return p.SendFile(pathKey, bytes.NewReader(content), "application/octet-stream", modTime)
}

func (p *AliyunOSS) PublicURL(pathKey string) string {
	pathKey = fileurl.PathSuffixCheckAdd(p.Config.CustomPath, "/") + pathKey
	endpoint := strings.TrimPrefix(strings.TrimPrefix(p.Config.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", p.Config.BucketName, endpoint, pathKey)
}
