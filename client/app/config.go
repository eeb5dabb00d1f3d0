package app

import (
	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

type Config struct {
	Api struct {
		Host       string `default:"http://localhost:6000/api" env:"SMARTJOB_API_HOST"`
		TimeoutSec int    `default:"30" env:"SMARTJOB_API_TIMEOUT_SEC"`
	}
	Storage struct {
		Path string `default:"smartjob-client.sqlite" env:"SMARTJOB_STORAGE_PATH"`
	}
	LocalOnly *bool `default:"false" env:"SMARTJOB_LOCAL_ONLY"` // keep everything in storage, no API
}

// LoadConfig reads client.yml (or files) with environment overrides.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{"client.yml"}
	}
	conf := new(Config)
	if err := configor.New(&configor.Config{}).Load(conf, files...); err != nil {
		return nil, errors.Wrap(err, "client config load failed")
	}
	return conf, nil
}
