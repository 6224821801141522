package local_fs

type Config struct {
	SavePath       string `yaml:"save-path" default:"storage/uploads"`
	HttpfsIsEnable bool   `yaml:"httpfs-is-enable" default:"true"`
	BaseURL        string `yaml:"base-url"`
}

type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	if conf.SavePath == "" {
		conf.SavePath = "storage/uploads"
	}
	return &LocalFS{
		Config: conf,
	}, nil
}
