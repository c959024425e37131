package feedbackhandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-profile-backend/lib/authz"
	"hr-profile-backend/models"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
	dbmodels "hr-profile-backend/models/db"
)

type stubFeedbackStore struct {
	created *dbmodels.Feedback
}

func (s *stubFeedbackStore) Create(rec dbmodels.Feedback) (string, error) {
	s.created = &rec
	return "fb-1", nil
}

func (s *stubFeedbackStore) ListByEmployee(employeeID string) ([]dbmodels.Feedback, error) {
	return nil, nil
}

type stubPolisher struct {
	result string
	err    error
}

func (s stubPolisher) Polish(ctx context.Context, text string) (string, error) {
	return s.result, s.err
}

func TestSubmit(t *testing.T) {
	actor := authz.Subject{ID: "emp-1", Role: models.EmployeeRole}

	t.Run(`без получателя отзыв оставляется самому себе`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store}
		id, err := i.Submit(context.TODO(), actor, feedbackapimodels.SubmitRequest{Text: "Отличный коллега"})
		require.Nil(t, err)
		require.Equal(t, "fb-1", id)
		require.NotNil(t, store.created)
		require.Equal(t, "emp-1", store.created.EmployeeID)
		require.Equal(t, "emp-1", store.created.AuthorID)
	})

	t.Run(`без улучшения сохраняется только исходный текст`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store, polisher: stubPolisher{result: "не должен вызываться"}}
		_, err := i.Submit(context.TODO(), actor, feedbackapimodels.SubmitRequest{
			EmployeeID: "emp-2",
			Text:       "Всегда помогает команде",
		})
		require.Nil(t, err)
		require.Equal(t, "emp-2", store.created.EmployeeID)
		require.Equal(t, "Всегда помогает команде", store.created.Text)
		require.Nil(t, store.created.PolishedText)
	})

	t.Run(`успешное улучшение текста`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store, polisher: stubPolisher{result: "Надежный и отзывчивый специалист"}}
		_, err := i.Submit(context.TODO(), actor, feedbackapimodels.SubmitRequest{
			Text:   "норм чувак",
			Polish: "on",
		})
		require.Nil(t, err)
		require.Equal(t, "норм чувак", store.created.Text)
		require.NotNil(t, store.created.PolishedText)
		require.Equal(t, "Надежный и отзывчивый специалист", *store.created.PolishedText)
	})

	t.Run(`при недоступном сервисе сохраняется исходный текст`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store, polisher: stubPolisher{err: errors.New("сервис недоступен")}}
		_, err := i.Submit(context.TODO(), actor, feedbackapimodels.SubmitRequest{
			Text:   "норм чувак",
			Polish: "on",
		})
		require.Nil(t, err)
		require.NotNil(t, store.created.PolishedText)
		require.Equal(t, "норм чувак", *store.created.PolishedText)
	})

	t.Run(`при отключенном улучшении сохраняется исходный текст`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store, polisher: nil}
		_, err := i.Submit(context.TODO(), actor, feedbackapimodels.SubmitRequest{
			Text:   "норм чувак",
			Polish: "on",
		})
		require.Nil(t, err)
		require.NotNil(t, store.created.PolishedText)
		require.Equal(t, "норм чувак", *store.created.PolishedText)
	})

	t.Run(`отзыв без текста не сохраняется`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store}
		_, err := i.Submit(context.TODO(), actor, feedbackapimodels.SubmitRequest{Polish: "on"})
		require.ErrorIs(t, err, ErrValidation)
		require.Nil(t, store.created)
	})

	t.Run(`неавторизованный пользователь`, func(t *testing.T) {
		store := &stubFeedbackStore{}
		i := impl{feedbackStore: store}
		_, err := i.Submit(context.TODO(), authz.Subject{}, feedbackapimodels.SubmitRequest{Text: "текст"})
		require.ErrorIs(t, err, ErrAccessDenied)
		require.Nil(t, store.created)
	})
}
