package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB           DBConfig
	Server       ServerConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	LLM          LLMConfig
	Generation   GenerationConfig
	Notification NotificationConfig
	CacheTTLs    CacheTTLConfig
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig selects and configures the generative model.
type LLMConfig struct {
	Provider           string // anthropic, openai or ollama
	Model              string
	AnthropicAPIKey    string
	OpenAIAPIKey       string
	OllamaServerURL    string
	Timeout            time.Duration
	MaxTokensConcept   int
	MaxTokensQuestions int
}

// GenerationConfig tunes the question-ingestion pipeline.
type GenerationConfig struct {
	QuestionsPerConcept int
	EasyCount           int
	HardCount           int
	MaxConceptsToAvoid  int
	LastRunTTL          time.Duration
}

// NotificationConfig configures the push gateway and streak reminders.
type NotificationConfig struct {
	ServiceAccountJSON string
	ServiceAccountFile string
	ReminderLocalHour  int
	MinStreak          int
	DedupeTTL          time.Duration
}

type CacheTTLConfig struct {
	ThemeName time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 120)
	v.SetDefault("server.write_timeout", 120)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.name", "QUIZDB")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model", "claude-sonnet-4-20250514")
	v.SetDefault("llm.ollama_server_url", "http://localhost:11434")
	v.SetDefault("llm.timeout", 180)
	v.SetDefault("llm.max_tokens_concept", 500)
	v.SetDefault("llm.max_tokens_questions", 16000)

	v.SetDefault("generation.questions_per_concept", 15)
	v.SetDefault("generation.easy_count", 6)
	v.SetDefault("generation.hard_count", 3)
	v.SetDefault("generation.max_concepts_to_avoid", 100)
	v.SetDefault("generation.last_run_ttl", "168h")

	v.SetDefault("notification.reminder_local_hour", 22)
	v.SetDefault("notification.min_streak", 2)
	v.SetDefault("notification.dedupe_ttl", "20h")

	v.SetDefault("cache_ttls.theme_name", "24h")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:           strings.ToLower(v.GetString("llm.provider")),
			Model:              v.GetString("llm.model"),
			AnthropicAPIKey:    v.GetString("llm.anthropic_api_key"),
			OpenAIAPIKey:       v.GetString("llm.openai_api_key"),
			OllamaServerURL:    v.GetString("llm.ollama_server_url"),
			Timeout:            time.Duration(v.GetInt("llm.timeout")) * time.Second,
			MaxTokensConcept:   v.GetInt("llm.max_tokens_concept"),
			MaxTokensQuestions: v.GetInt("llm.max_tokens_questions"),
		},
		Generation: GenerationConfig{
			QuestionsPerConcept: v.GetInt("generation.questions_per_concept"),
			EasyCount:           v.GetInt("generation.easy_count"),
			HardCount:           v.GetInt("generation.hard_count"),
			MaxConceptsToAvoid:  v.GetInt("generation.max_concepts_to_avoid"),
			LastRunTTL:          v.GetDuration("generation.last_run_ttl"),
		},
		Notification: NotificationConfig{
			ServiceAccountJSON: v.GetString("notification.service_account_json"),
			ServiceAccountFile: v.GetString("notification.service_account_file"),
			ReminderLocalHour:  v.GetInt("notification.reminder_local_hour"),
			MinStreak:          v.GetInt("notification.min_streak"),
			DedupeTTL:          v.GetDuration("notification.dedupe_ttl"),
		},
		CacheTTLs: CacheTTLConfig{
			ThemeName: v.GetDuration("cache_ttls.theme_name"),
		},
	}

	// Well-known variable names win over the nested keys.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		config.LLM.AnthropicAPIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.LLM.OpenAIAPIKey = key
	}
	if sa := os.Getenv("FIREBASE_SERVICE_ACCOUNT"); sa != "" {
		config.Notification.ServiceAccountJSON = sa
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Generation.QuestionsPerConcept <= 0 {
		return fmt.Errorf("generation.questions_per_concept must be positive, got %d", c.Generation.QuestionsPerConcept)
	}
	if c.Generation.EasyCount < 0 || c.Generation.HardCount < 0 {
		return fmt.Errorf("generation.easy_count and generation.hard_count must not be negative")
	}
	if c.Generation.MaxConceptsToAvoid < 0 {
		return fmt.Errorf("generation.max_concepts_to_avoid must not be negative")
	}
	if c.Notification.ReminderLocalHour < 0 || c.Notification.ReminderLocalHour > 23 {
		return fmt.Errorf("notification.reminder_local_hour must be within 0-23, got %d", c.Notification.ReminderLocalHour)
	}
	switch c.LLM.Provider {
	case "anthropic", "openai", "ollama":
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	return nil
}

// ServiceAccount returns the raw Firebase service account JSON, reading the
// configured file when no inline value is set.
func (c *Config) ServiceAccount() ([]byte, error) {
	if c.Notification.ServiceAccountJSON != "" {
		return []byte(c.Notification.ServiceAccountJSON), nil
	}
	if c.Notification.ServiceAccountFile == "" {
		return nil, errors.New("no firebase service account configured")
	}
	return os.ReadFile(c.Notification.ServiceAccountFile)
}
