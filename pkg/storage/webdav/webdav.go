package webdav

import (
	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

type Config struct {
	URL        string `yaml:"url"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	CustomPath string `yaml:"custom-path"`
	BaseURL    string `yaml:"base-url"`
}

type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

var clients = make(map[string]*WebDAV)

func NewClient(conf *Config) (*WebDAV, error) {
	key := conf.URL + "#" + conf.User
	if c, ok := clients[key]; ok {
		return c, nil
	}

	client := gowebdav.NewClient(conf.URL, conf.User, conf.Password)
	if err := client.Connect(); err != nil {
		return nil, errors.Wrap(err, "webdav")
	}

	c := &WebDAV{
		Client: client,
		Config: conf,
	}
	clients[key] = c
	return c, nil
}
