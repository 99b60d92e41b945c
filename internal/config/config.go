package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime        int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"1209600"` // 14 일
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Admin struct {
		Password string `env:"PASSWORD,required"`
	} `envPrefix:"ADMIN_"`
	Redis struct {
		Host                 string `env:"HOST" envDefault:"localhost"`
		Port                 int    `env:"PORT" envDefault:"6379"`
		Password             string `env:"PASSWORD,required"`
		ConnectTimeout       int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		RankingExpiration    int    `env:"RANKING_EXPIRATION" envDefault:"300"`      // 5 분
		ExtractionExpiration int    `env:"EXTRACTION_EXPIRATION" envDefault:"86400"` // 1 일
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Gemini struct {
		APIKey  string `env:"API_KEY,required"`
		Model   string `env:"MODEL" envDefault:"gemini-2.0-flash"`
		BaseURL string `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
		Timeout int    `env:"TIMEOUT" envDefault:"60"`
	} `envPrefix:"GEMINI_"`
	Seed struct {
		TimetablesPath string `env:"TIMETABLES_PATH" envDefault:"./internal/seed/data/timetables.json"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 첫 번째 오류만 반환해서 로그를 읽기 쉽게 유지한다
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
