package feedbackhandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-profile-backend/lib/authz"
	feedbackstore "hr-profile-backend/lib/feedback/store"
	"hr-profile-backend/lib/polish"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
	dbmodels "hr-profile-backend/models/db"
)

var (
	ErrAccessDenied = errors.New("операция недоступна")
	ErrValidation   = errors.New("не указан текст отзыва")
)

type Provider interface {
	Submit(ctx context.Context, actor authz.Subject, request feedbackapimodels.SubmitRequest) (id string, err error)
}

var Instance Provider

func NewHandler(db *gorm.DB, polisher polish.Provider) {
	Instance = impl{
		feedbackStore: feedbackstore.NewInstance(db),
		polisher:      polisher,
	}
}

type impl struct {
	feedbackStore feedbackstore.Provider
	polisher      polish.Provider
}

func (i impl) Submit(ctx context.Context, actor authz.Subject, request feedbackapimodels.SubmitRequest) (id string, err error) {
	if decision := authz.Decide(actor, actor.ID, authz.ActionSubmitFeedback); !decision.Allowed {
		return "", ErrAccessDenied
	}
	if err = request.Validate(); err != nil {
		return "", ErrValidation
	}
	employeeID := request.EmployeeID
	if employeeID == "" {
		employeeID = actor.ID
	}
	rec := dbmodels.Feedback{
		AuthorID:   actor.ID,
		EmployeeID: employeeID,
		Text:       request.Text,
	}
	if request.WantPolish() {
		rec.PolishedText = i.polishText(ctx, request.Text)
	}
	id, err = i.feedbackStore.Create(rec)
	if err != nil {
		log.
			WithField("author_id", actor.ID).
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка сохранения отзыва")
		return "", err
	}
	return id, nil
}

// polishText - улучшение текста внешним сервисом.
// При любой ошибке, включая отключенный бэкенд, сохраняется исходный текст,
// отправка отзыва не блокируется
func (i impl) polishText(ctx context.Context, text string) *string {
	if i.polisher == nil {
		return &text
	}
	polished, err := i.polisher.Polish(ctx, text)
	if err != nil {
		log.WithError(err).Warn("ошибка улучшения текста отзыва, сохраняем исходный текст")
		return &text
	}
	return &polished
}
