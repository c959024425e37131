package polish

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"hr-profile-backend/config"
	hfclient "hr-profile-backend/lib/polish/hf-client"
	yagptclient "hr-profile-backend/lib/polish/yagpt-client"
)

// Provider - улучшение текста отзыва внешним сервисом.
// Ошибки вызова обрабатывает вызывающая сторона откатом на исходный текст
type Provider interface {
	Polish(ctx context.Context, text string) (polished string, err error)
}

// NewHandler выбирает бэкенд по конфигурации, nil - улучшение отключено
func NewHandler() Provider {
	switch config.Conf.Polish.Provider {
	case "huggingface":
		cfg := config.Conf.Polish.HuggingFace
		if cfg.APIToken == "" {
			log.Warn("улучшение текста отключено, не задан токен HuggingFace")
			return nil
		}
		return hfImpl{client: hfclient.NewClient(cfg.Endpoint, cfg.APIToken)}
	case "yandexgpt":
		cfg := config.Conf.Polish.YandexGPT
		if cfg.IAMToken == "" {
			log.Warn("улучшение текста отключено, не задан токен YandexGPT")
			return nil
		}
		return yagptImpl{
			client: yagptclient.NewClient(cfg.IAMToken, cfg.CatalogID),
			promt:  cfg.Promt,
		}
	case "":
		return nil
	}
	log.WithField("provider", config.Conf.Polish.Provider).Warn("неизвестный бэкенд улучшения текста")
	return nil
}

type hfImpl struct {
	client hfclient.Provider
}

func (i hfImpl) Polish(ctx context.Context, text string) (string, error) {
	return i.client.Summarize(ctx, text)
}

type yagptImpl struct {
	client yagptclient.Provider
	promt  string
}

func (i yagptImpl) Polish(ctx context.Context, text string) (string, error) {
	return i.client.GenerateByPromtAndText(ctx, i.promt, fmt.Sprintf("Перепиши этот отзыв: %s", text))
}
