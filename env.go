package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	Port string `env:"PORT" env-default:"8000"`

	YtdlpPath        string        `env:"YTDLP_PATH" env-default:"yt-dlp"`
	ExtractorTimeout time.Duration `env:"EXTRACTOR_TIMEOUT" env-default:"0s"`

	StreamCacheTTL           time.Duration `env:"STREAM_CACHE_TTL" env-default:"30m"`
	StreamCacheSweepInterval time.Duration `env:"STREAM_CACHE_SWEEP_INTERVAL" env-default:"0s"`
	RedisURL                 string        `env:"REDIS_URL"`

	LikesFile   string `env:"LIKES_FILE" env-default:"liked_songs.json"`
	FrontendDir string `env:"FRONTEND_DIR" env-default:"frontend/dist"`

	OTLPEndpoint      string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	TraceSampleRatio  float64 `env:"TRACE_SAMPLE_RATIO" env-default:"1"`
	DisableMiddleware bool    `env:"DISABLE_MIDDLEWARE" env-default:"false"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

func LoadEnv() (*Env, error) {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Debug("No .env file loaded")
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, err
	}

	return &env, nil
}
