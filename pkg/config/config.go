package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEnvFile = "./configs/.env"
	// Overrides the location of the env file
	EnvFileKey = "FLOWMOTION_ENV_FILE"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the env file once. A missing file is fine, variables may come
// from the environment alone.
func New() *Config {
	once.Do(func() {
		path := os.Getenv(EnvFileKey)
		if path == "" {
			path = DefaultEnvFile
		}
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// GetDuration returns def when key is unset or not a valid duration.
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return d
}

func (c *Config) GetBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}
