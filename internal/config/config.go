package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Event transport. With an empty REDIS_ADDR events stay on an in-process
	// Go channel pub/sub; set it to move them onto Redis streams.
	RedisAddr string `envconfig:"REDIS_ADDR"`

	// Observability
	JaegerEndpoint string `envconfig:"JAEGER_ENDPOINT"`

	// Upstream APIs
	PlayoAPIURL       string        `envconfig:"PLAYO_API_URL" default:"https://api.playo.io/activity-public/list/location"`
	RedditBaseURL     string        `envconfig:"REDDIT_BASE_URL" default:"https://www.reddit.com"`
	IPAPIBaseURL      string        `envconfig:"IP_API_BASE_URL" default:"http://ip-api.com/json/"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
