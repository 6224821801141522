// Package storage abstracts the blob store that holds note images.
package storage

import (
	"io"
	"time"

	"github.com/marcomarassi/note-keeper-service/pkg/code"
	"github.com/marcomarassi/note-keeper-service/pkg/storage/aliyun_oss"
	"github.com/marcomarassi/note-keeper-service/pkg/storage/aws_s3"
	"github.com/marcomarassi/note-keeper-service/pkg/storage/local_fs"
	"github.com/marcomarassi/note-keeper-service/pkg/storage/minio"
	"github.com/marcomarassi/note-keeper-service/pkg/storage/webdav"
)

type Type = string
type CloudType = Type

const OSS CloudType = "oss"
const S3 CloudType = "s3"
const LOCAL Type = "localfs"
const MinIO CloudType = "minio"
const WebDAV CloudType = "webdav"

var StorageTypeMap = map[Type]bool{
	OSS:    true,
	S3:     true,
	LOCAL:  true,
	MinIO:  true,
	WebDAV: true,
}

// Config is the unified storage configuration; only the fields for the
// selected Type are read.
type Config struct {
	Type Type `yaml:"type" default:"localfs"`

	// Cloud storage (S3/OSS/MinIO)
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`

	// WebDAV
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Path     string `yaml:"path"`

	// Local FS
	SavePath       string `yaml:"save-path" default:"storage/uploads"`
	HttpfsIsEnable bool   `yaml:"httpfs-is-enable" default:"true"`
	// BaseURL prefixes public URLs served by the local httpfs route.
	BaseURL string `yaml:"base-url"`
}

// Storager stores blobs under a path key and hands back a publicly
// fetchable URL for each stored key.
type Storager interface {
	SendFile(pathKey string, file io.Reader, cType string, modTime time.Time) (string, error)
	SendContent(pathKey string, content []byte, modTime time.Time) (string, error)
	Delete(pathKey string) error
	PublicURL(pathKey string) string
}

// NewClient builds the backend selected by config.Type.
func NewClient(config *Config) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}

	switch config.Type {
	case LOCAL:
		return local_fs.NewClient(&local_fs.Config{
			SavePath:       config.SavePath,
			HttpfsIsEnable: config.HttpfsIsEnable,
			BaseURL:        config.BaseURL,
		})
	case OSS:
		return aliyun_oss.NewClient(&aliyun_oss.Config{
			Endpoint:        config.Endpoint,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	case S3:
		return aws_s3.NewClient(&aws_s3.Config{
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	case MinIO:
		return minio.NewClient(&minio.Config{
			Endpoint:        config.Endpoint,
			Region:          config.Region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
		})
	case WebDAV:
		return webdav.NewClient(&webdav.Config{
			URL:        config.Endpoint,
			User:       config.User,
			Password:   config.Password,
			CustomPath: config.Path,
			BaseURL:    config.BaseURL,
		})
	}
	return nil, code.ErrorInvalidStorageType
}
