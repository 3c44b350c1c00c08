package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultDatabase = "Personal"

type MongoSettings struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type LogSettings struct {
	Level  string
	Format string
}

type Settings struct {
	Mongo           MongoSettings
	Port            string
	Log             LogSettings
	AllowedOrigins  []string
	CardioGoalMiles float64
}

var ErrMissingMongoURI = errors.New("mongodb.uri is required")

// Load reads .env.local and .env (when present), an optional config.yaml in
// the working directory, and the environment. Environment keys use
// underscores, so MONGODB_URI overrides mongodb.uri.
func Load() (*Settings, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("mongodb.database", DefaultDatabase)
	v.SetDefault("mongodb.timeout", "10s")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("kpi.cardio_goal_miles", 6)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what most hosts inject.
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Mongo: MongoSettings{
			URI:      v.GetString("mongodb.uri"),
			Database: v.GetString("mongodb.database"),
			Timeout:  v.GetDuration("mongodb.timeout"),
		},
		Port: v.GetString("server.port"),
		Log: LogSettings{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		AllowedOrigins:  splitList(v.GetString("cors.allowed_origins")),
		CardioGoalMiles: v.GetFloat64("kpi.cardio_goal_miles"),
	}

	if s.Mongo.URI == "" {
		return nil, ErrMissingMongoURI
	}
	if s.Mongo.Timeout <= 0 {
		s.Mongo.Timeout = 10 * time.Second
	}
	return s, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
