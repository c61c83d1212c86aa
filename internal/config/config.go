package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"catedra-calendar/internal/roster"

	gomysql "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	AI       AIConfig       `yaml:"ai"`
	Database DatabaseConfig `yaml:"database"`
	Features FeatureConfig  `yaml:"features"`
	Users    []roster.User  `yaml:"users"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// AIConfig points at any OpenAI-compatible chat-completions endpoint. An empty
// APIKey disables the assistant; callers then get literal fallbacks.
type AIConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`

	// InMemory swaps MySQL for the in-process store. Useful for local
	// development and demos; nothing survives a restart.
	InMemory bool `yaml:"in_memory"`
}

type FeatureConfig struct {
	// Search toggles the free-text filter on the calendar view. Some
	// deployments run with it off while keeping the field in the API.
	Search bool `yaml:"search"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server:   ServerConfig{Port: 9871},
		AI:       AIConfig{BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai", Model: "gemini-pro"},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Database: DatabaseConfig{Port: 3306, Name: "catedra_calendar"},
		Features: FeatureConfig{Search: true},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/catedra-calendar/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.AI.BaseURL, "AI_BASE_URL")
	envOverride(&c.AI.APIKey, "AI_API_KEY")
	envOverride(&c.AI.Model, "AI_MODEL")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// mysqlConfig builds the driver config. ClientFoundRows is required: the
// gateway treats RowsAffected == 0 as not-found, and without it MySQL counts
// changed rows, so saving an entry with unchanged fields would report a
// missing row.
func (c *Config) mysqlConfig() *gomysql.Config {
	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	connector, err := gomysql.NewConnector(c.mysqlConfig())
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// Roster builds the validated user roster from the configured list.
func (c *Config) Roster() (*roster.Roster, error) {
	return roster.New(c.Users)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
