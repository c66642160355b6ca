package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"edudb-server/internal/infra/sql"

	"github.com/spf13/viper"
)

const EnvPrefix = "edudb"

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads the process configuration once from the global viper
// instance. A bad configuration is fatal.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		cfg, err := Load(viper.GetViper())
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

// Load resolves every key from v: environment first, then the server.yaml
// file when one is found, then the defaults.
func Load(v *viper.Viper) (AppConfig, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName("server")
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, err
		}
	}

	cfg := AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		HTTP: HTTPConfig{
			Address:        v.GetString("http.address"),
			AllowedOrigins: v.GetStringSlice("http.allowed_origins"),
			StaticDir:      v.GetString("http.static_dir"),
		},
		Database: DatabaseConfig{
			Driver:         strings.ToLower(v.GetString("database.driver")),
			Host:           v.GetString("database.host"),
			Port:           v.GetInt("database.port"),
			User:           v.GetString("database.user"),
			Password:       v.GetString("database.password"),
			Name:           v.GetString("database.name"),
			PoolSize:       v.GetInt("database.pool_size"),
			ResetSession:   v.GetBool("database.reset_session"),
			AcquireTimeout: v.GetDuration("database.acquire_timeout"),
			QueryTimeout:   v.GetDuration("database.query_timeout"),
			ScriptsDir:     v.GetString("database.scripts_dir"),
		},
		Bootstrap: BootstrapConfig{
			FailurePolicy: v.GetString("bootstrap.failure_policy"),
		},
		Learning: LearningConfig{
			CertificatePrefix:   v.GetString("learning.certificate_prefix"),
			QuestionsPerLevel:   v.GetInt("learning.questions_per_level"),
			Levels:              v.GetInt("learning.levels"),
			PassingScore:        v.GetFloat64("learning.passing_score"),
			CertificateCacheTTL: v.GetDuration("learning.certificate_cache_ttl"),
		},
		OTel: OTelConfig{
			Endpoint: v.GetString("otel.endpoint"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")

	v.SetDefault("http.address", ":5000")
	v.SetDefault("http.allowed_origins", []string{})
	v.SetDefault("http.static_dir", "")

	v.SetDefault("database.driver", sql.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "edudb")
	v.SetDefault("database.pool_size", 5)
	v.SetDefault("database.reset_session", true)
	v.SetDefault("database.acquire_timeout", 10*time.Second)
	v.SetDefault("database.query_timeout", 30*time.Second)
	v.SetDefault("database.scripts_dir", "")

	v.SetDefault("bootstrap.failure_policy", sql.ContinueOnFailure.String())

	v.SetDefault("learning.certificate_prefix", "EDB")
	v.SetDefault("learning.questions_per_level", 15)
	v.SetDefault("learning.levels", 3)
	v.SetDefault("learning.passing_score", 80)
	v.SetDefault("learning.certificate_cache_ttl", 10*time.Minute)

	v.SetDefault("otel.endpoint", "")
}

type AppConfig struct {
	General   GeneralConfig
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Bootstrap BootstrapConfig
	Learning  LearningConfig
	OTel      OTelConfig
}

func (c AppConfig) Validate() error {
	if _, err := sql.DialectFor(c.Database.Driver); err != nil {
		return err
	}
	if _, err := sql.ParseFailurePolicy(c.Bootstrap.FailurePolicy); err != nil {
		return err
	}
	if c.Database.Name == "" {
		return fmt.Errorf("%w: database.name is empty", sql.ErrInvalidArgument)
	}
	if c.Learning.QuestionsPerLevel <= 0 || c.Learning.Levels <= 0 {
		return fmt.Errorf("%w: learning.questions_per_level and learning.levels must be positive", sql.ErrInvalidArgument)
	}
	return nil
}

type GeneralConfig struct {
	LogLevel string
}

type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
	StaticDir      string
}

type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	PoolSize       int
	ResetSession   bool
	AcquireTimeout time.Duration
	QueryTimeout   time.Duration
	ScriptsDir     string
}

func (c DatabaseConfig) Target() sql.Target {
	return sql.Target{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: c.Name,
	}
}

type BootstrapConfig struct {
	FailurePolicy string
}

type LearningConfig struct {
	CertificatePrefix   string
	QuestionsPerLevel   int
	Levels              int
	PassingScore        float64
	CertificateCacheTTL time.Duration
}

type OTelConfig struct {
	Endpoint string
}
