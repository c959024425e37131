package hfclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Summarize(ctx context.Context, text string) (summary string, err error)
}

func NewClient(endpoint, apiToken string) Provider {
	return &impl{
		endpoint: endpoint,
		apiToken: apiToken,
	}
}

type impl struct {
	endpoint string
	apiToken string
}

type summarizeRequest struct {
	Inputs string `json:"inputs"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

// Summarize - запрос к HuggingFace Inference API.
// Ответ ожидается списком, итог в summary_text первого элемента,
// любое другое тело ответа считается ошибкой
func (i impl) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(summarizeRequest{Inputs: text})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сериализации запроса")
	}

	r, _ := http.NewRequestWithContext(ctx, "POST", i.endpoint, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", i.apiToken))

	logger := log.WithField("external_request", i.endpoint)

	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		return "", errors.Wrap(err, "ошибка отправки запроса в HuggingFace")
	}
	defer response.Body.Close()

	responseBody, _ := io.ReadAll(response.Body)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.
			WithField("status_code", response.StatusCode).
			WithField("response_body", string(responseBody)).
			Error("ошибка запроса в HuggingFace")
		return "", errors.Errorf("некорректный статус ответа: %v", response.StatusCode)
	}

	resp := []summarizeResponse{}
	if err = json.Unmarshal(responseBody, &resp); err != nil {
		return "", errors.Wrap(err, "ошибка сериализации ответа")
	}
	if len(resp) == 0 || resp[0].SummaryText == "" {
		return "", errors.New("ответ не содержит итоговый текст")
	}
	return resp[0].SummaryText, nil
}
