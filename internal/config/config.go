package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	GoogleAds        GoogleAds        `mapstructure:",squash"`
	NocoDB           NocoDB           `mapstructure:",squash"`
	N8N              N8N              `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	SessionCleanup   SessionCleanup   `mapstructure:",squash"`
	WorkflowSchedule WorkflowSchedule `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	PublicURL      string   `mapstructure:"public_url"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type GoogleAds struct {
	ClientID              string        `mapstructure:"google_ads_client_id"`
	ClientSecret          string        `mapstructure:"google_ads_client_secret"`
	DeveloperToken        string        `mapstructure:"google_ads_developer_token"`
	LoginCustomerID       string        `mapstructure:"google_ads_login_customer_id"`
	BaseURL               string        `mapstructure:"google_ads_api_url"`
	Version               string        `mapstructure:"google_ads_api_version"`
	RedirectURL           string        `mapstructure:"google_ads_redirect_url"`
	RequestTimeout        time.Duration `mapstructure:"google_ads_request_timeout"`
	MaxConcurrentRequests int           `mapstructure:"google_ads_max_concurrent_requests"`
	URL                   string        `mapstructure:"-"`
}

type NocoDB struct {
	URL                        string            `mapstructure:"nocodb_url"`
	APIToken                   string            `mapstructure:"nocodb_api_token"`
	Tables                     []string          `mapstructure:"nocodb_tables"`
	ClientConfigurationTableID string            `mapstructure:"nocodb_client_configuration_table_id"`
	RequestTimeout             time.Duration     `mapstructure:"nocodb_request_timeout"`
	TableIDs                   map[string]string `mapstructure:"-"`
}

type N8N struct {
	URL            string        `mapstructure:"n8n_url"`
	WebhookSecret  string        `mapstructure:"n8n_webhook_secret"`
	RequestTimeout time.Duration `mapstructure:"n8n_request_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	CookieName   string        `mapstructure:"session_cookie_name"`
	CookieSecure bool          `mapstructure:"session_cookie_secure"`
}

type SessionCleanup struct {
	CronSchedule string `mapstructure:"session_cleanup_cron"`
	Enabled      bool   `mapstructure:"session_cleanup_enabled"`
}

type WorkflowSchedule struct {
	Schedules  string            `mapstructure:"workflow_schedules"`
	Enabled    bool              `mapstructure:"workflow_schedule_enabled"`
	ByWorkflow map[string]string `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("PUBLIC_URL", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://dashboard.accolades.marketing")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_API_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_REDIRECT_URL", "http://localhost:8000/api/auth/callback")
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("GOOGLE_ADS_MAX_CONCURRENT_REQUESTS", 4)

	viper.SetDefault("NOCODB_URL", "https://database.accolades.marketing")
	viper.SetDefault("NOCODB_API_TOKEN", "")
	// nome=id da tabela
	viper.SetDefault("NOCODB_TABLES", "campaigns=m85p8wmzwk6mrls,searchTermsAnalysis=mjfs0gle9j3wyfi,workflowLogs=mrpo5lia5l7a7al,dailyMetrics=mr4qlww7ecgz0ap")
	viper.SetDefault("NOCODB_CLIENT_CONFIGURATION_TABLE_ID", "")
	viper.SetDefault("NOCODB_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("N8N_URL", "https://automation.accolades.marketing")
	viper.SetDefault("N8N_WEBHOOK_SECRET", "")
	viper.SetDefault("N8N_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("SESSION_TTL", "720h")
	viper.SetDefault("SESSION_COOKIE_NAME", "ads_dashboard_session")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)

	viper.SetDefault("SESSION_CLEANUP_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)

	// workflow=cron separados por ";", ex: weekly-report=0 8 * * 1;campaign-performance=0 6 * * *
	viper.SetDefault("WORKFLOW_SCHEDULES", "")
	viper.SetDefault("WORKFLOW_SCHEDULE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.resolve(); err != nil {
		return nil, err
	}

	return config, nil
}

// resolve calcula os valores derivados das variáveis de ambiente
func (c *Config) resolve() error {
	c.GoogleAds.URL = fmt.Sprintf("%s/%s", strings.TrimSuffix(c.GoogleAds.BaseURL, "/"), c.GoogleAds.Version)
	c.GoogleAds.LoginCustomerID = NormalizeCustomerID(c.GoogleAds.LoginCustomerID)

	if c.GoogleAds.MaxConcurrentRequests <= 0 {
		c.GoogleAds.MaxConcurrentRequests = 1
	}

	c.NocoDB.URL = strings.TrimSuffix(c.NocoDB.URL, "/")
	c.N8N.URL = strings.TrimSuffix(c.N8N.URL, "/")

	tables, err := ParseKeyValueList(c.NocoDB.Tables)
	if err != nil {
		return fmt.Errorf("NOCODB_TABLES inválido: %w", err)
	}
	c.NocoDB.TableIDs = tables

	schedules, err := ParseKeyValueList(strings.Split(c.WorkflowSchedule.Schedules, ";"))
	if err != nil {
		return fmt.Errorf("WORKFLOW_SCHEDULES inválido: %w", err)
	}
	c.WorkflowSchedule.ByWorkflow = schedules

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// ParseKeyValueList converte entradas "chave=valor" em um mapa
func ParseKeyValueList(entries []string) (map[string]string, error) {
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("entrada mal formatada: %q", entry)
		}

		result[key] = value
	}

	return result, nil
}

// NormalizeCustomerID remove os hífens do ID de cliente (123-456-7890)
func NormalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
