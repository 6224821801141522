package aliyun_oss

import (
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

type Config struct {
	Endpoint        string `yaml:"endpoint"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	CustomPath      string `yaml:"custom-path"`
}

type AliyunOSS struct {
	Bucket *oss.Bucket
	Config *Config
}

var clients = make(map[string]*AliyunOSS)

func NewClient(conf *Config) (*AliyunOSS, error) {
	key := conf.Endpoint + "#" + conf.AccessKeyID + "#" + conf.BucketName
	if c, ok := clients[key]; ok {
		return c, nil
	}

	client, err := oss.New(conf.Endpoint, conf.AccessKeyID, conf.AccessKeySecret)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}

	bucket, err := client.Bucket(conf.BucketName)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}

	c := &AliyunOSS{
		Bucket: bucket,
		Config: conf,
	}
	clients[key] = c
	return c, nil
}
