package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env string `env:"APP_ENV" env-default:"local"`

	Http struct {
		Addr        string `env:"HTTP_ADDR" env-default:":8080"`
		BodyLimitMb int    `env:"HTTP_BODY_LIMIT_MB" env-default:"32"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL" env-default:"info"`
		Format string `env:"LOG_FORMAT" env-default:"json"`
	}

	Catalog struct {
		AssetRoot      string        `env:"CATALOG_ASSET_ROOT" env-default:"."`
		Autoload       string        `env:"CATALOG_AUTOLOAD" env-default:"./LISTADO_PELIS.xlsx"`
		HeaderRow      bool          `env:"CATALOG_HEADER_ROW" env-default:"false"`
		LibreOfficeBin string        `env:"CATALOG_LIBREOFFICE_BIN" env-default:"libreoffice"`
		FetchTimeout   time.Duration `env:"CATALOG_FETCH_TIMEOUT" env-default:"0s"`
	}

	Clients struct {
		AI struct {
			ApiKey  string        `env:"AI_API_KEY,API_KEY"`
			BaseUrl string        `env:"AI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta/openai/"`
			Model   string        `env:"AI_MODEL" env-default:"gemini-3-flash-preview"`
			Timeout time.Duration `env:"AI_TIMEOUT" env-default:"0s"`
		}
	}
}

// Load reads an optional dotenv file and then the process environment.
func Load(dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load(".env")
	if err != nil {
		panic(err)
	}
	return cfg
}

func (this *Config) BodyLimit() int {
	return this.Http.BodyLimitMb * 1024 * 1024
}
