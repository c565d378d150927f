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
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Scraper        Scraper        `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	ComparisonSync ComparisonSync `mapstructure:",squash"`
	Export         Export         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

// Scraper configura as sessões de navegação usadas na coleta dos canais
type Scraper struct {
	BaseURL              string        `mapstructure:"scraper_base_url"`
	UserAgent            string        `mapstructure:"scraper_user_agent"`
	AcceptLanguage       string        `mapstructure:"scraper_accept_language"`
	RequestTimeout       time.Duration `mapstructure:"scraper_request_timeout"`
	RequestsPerSecond    float64       `mapstructure:"scraper_requests_per_second"`
	WaitTimeoutSeconds   int           `mapstructure:"scraper_wait_timeout_seconds"`
	MaxScrollAttempts    int           `mapstructure:"scraper_max_scroll_attempts"`
	ContinuationSelector string        `mapstructure:"scraper_continuation_selector"`
}

// WaitTimeout é o tempo máximo de espera por um elemento da página
func (s Scraper) WaitTimeout() time.Duration {
	return time.Duration(s.WaitTimeoutSeconds) * time.Second
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ComparisonSync struct {
	CronSchedule       string   `mapstructure:"comparison_sync_cron"`
	Pairs              []string `mapstructure:"comparison_sync_pairs"`
	MaxConcurrentPairs int      `mapstructure:"comparison_sync_max_concurrent_pairs"`
	Enabled            bool     `mapstructure:"comparison_sync_enabled"`
}

type Export struct {
	Directory string `mapstructure:"export_directory"`
	Enabled   bool   `mapstructure:"export_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/youstats?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", true)

	viper.SetDefault("SCRAPER_BASE_URL", "https://www.youtube.com")
	viper.SetDefault("SCRAPER_USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	viper.SetDefault("SCRAPER_ACCEPT_LANGUAGE", "en-US,en;q=0.9")
	viper.SetDefault("SCRAPER_REQUEST_TIMEOUT", "15s")
	viper.SetDefault("SCRAPER_REQUESTS_PER_SECOND", 2) // 2 requisições por segundo por sessão
	viper.SetDefault("SCRAPER_WAIT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SCRAPER_MAX_SCROLL_ATTEMPTS", 200)
	viper.SetDefault("SCRAPER_CONTINUATION_SELECTOR", `link[rel="next"], a[rel="next"]`)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("COMPARISON_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("COMPARISON_SYNC_PAIRS", "")         // Pares no formato "@pivo:@alvo,@pivo2:@alvo2"
	viper.SetDefault("COMPARISON_SYNC_ENABLED", false)
	// Cada par já abre duas sessões de navegação
	viper.SetDefault("COMPARISON_SYNC_MAX_CONCURRENT_PAIRS", 1)

	viper.SetDefault("EXPORT_DIRECTORY", defaultExportDirectory())
	viper.SetDefault("EXPORT_ENABLED", false)

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

	config.ComparisonSync.Pairs = compact(config.ComparisonSync.Pairs)
	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// compact remove entradas vazias e espaços das listas separadas por vírgula
func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}
	return result
}

// Diretório padrão de exportação: área de trabalho do usuário
func defaultExportDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
