package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-profile" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		PreloadOnStart *bool  `default:"true" env:"DB_PRELOAD_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"local-dev-secret" env:"AUTH_JWT_SECRET"`
		// JWTExpireInSec - время жизни сессии, по умолчанию 7 дней
		JWTExpireInSec int    `default:"604800" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		SessionCookie  string `default:"hrp_session" env:"AUTH_SESSION_COOKIE"`
		// SeedPassword - пароль учетных записей, создаваемых при предзаполнении
		SeedPassword string `default:"password123" env:"AUTH_SEED_PASSWORD"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"hr@localhost" env:"SMTP_FROM"`
	}
	Polish struct {
		// Provider - huggingface или yandexgpt, пусто - улучшение текста отключено
		Provider string `default:"huggingface" env:"POLISH_PROVIDER"`
		HuggingFace struct {
			Endpoint string `default:"https://api-inference.huggingface.co/models/facebook/bart-large-cnn" env:"HUGGINGFACE_ENDPOINT"`
			APIToken string `default:"" env:"HUGGINGFACE_API_TOKEN"`
		}
		YandexGPT struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
			Promt     string `default:"Ты - HR ассистент. Перепиши отзыв о коллеге кратко и профессионально, сохранив смысл" env:"YANDEX_GPT_PROMT"`
		}
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
