package absencehandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	absencestore "hr-profile-backend/lib/absence/store"
	"hr-profile-backend/lib/authz"
	"hr-profile-backend/lib/smtp"
	"hr-profile-backend/models"
	absenceapimodels "hr-profile-backend/models/api/absence"
	dbmodels "hr-profile-backend/models/db"
)

var (
	ErrAccessDenied = errors.New("операция недоступна")
	ErrValidation   = errors.New("не указаны даты отсутствия")
)

type Provider interface {
	Request(actor authz.Subject, request absenceapimodels.CreateRequest) (id string, err error)
	Decide(actor authz.Subject, requestID string, decision models.AbsenceStatus) error
}

var Instance Provider

func NewHandler(db *gorm.DB, mailer smtp.Provider) {
	Instance = impl{
		absenceStore: absencestore.NewInstance(db),
		mailer:       mailer,
	}
}

type impl struct {
	absenceStore absencestore.Provider
	mailer       smtp.Provider
}

// Request - владельцем заявки всегда становится текущий пользователь,
// переданный в запросе идентификатор не учитывается
func (i impl) Request(actor authz.Subject, request absenceapimodels.CreateRequest) (id string, err error) {
	if decision := authz.Decide(actor, actor.ID, authz.ActionCreateAbsence); !decision.Allowed {
		return "", ErrAccessDenied
	}
	if err = request.Validate(); err != nil {
		return "", ErrValidation
	}
	startDate, _ := time.Parse(time.DateOnly, request.StartDate)
	endDate, _ := time.Parse(time.DateOnly, request.EndDate)
	rec := dbmodels.AbsenceRequest{
		EmployeeID: actor.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     models.AbsencePendingStatus,
	}
	id, err = i.absenceStore.Create(rec)
	if err != nil {
		log.
			WithField("employee_id", actor.ID).
			WithError(err).
			Error("ошибка создания заявки на отсутствие")
		return "", err
	}
	return id, nil
}

// Decide - статус перезаписывается без проверки текущего значения,
// повторное решение по рассмотренной заявке не блокируется
func (i impl) Decide(actor authz.Subject, requestID string, decision models.AbsenceStatus) error {
	if policyDecision := authz.Decide(actor, "", authz.ActionDecideAbsence); !policyDecision.Allowed {
		return ErrAccessDenied
	}
	if !decision.IsDecision() {
		return errors.New("недопустимый статус заявки")
	}
	rec, err := i.absenceStore.GetByID(requestID)
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithError(err).
			Error("ошибка поиска заявки на отсутствие")
		return err
	}
	if rec == nil {
		log.WithField("request_id", requestID).Warn("заявка на отсутствие не найдена")
		return nil
	}
	err = i.absenceStore.SetStatus(requestID, decision)
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithError(err).
			Error("ошибка обновления статуса заявки")
		return err
	}
	i.notifyOwner(rec, decision)
	return nil
}

// уведомление владельцу заявки, ошибки отправки не влияют на результат
func (i impl) notifyOwner(rec *dbmodels.AbsenceRequest, decision models.AbsenceStatus) {
	if i.mailer == nil || rec.Employee == nil {
		return
	}
	message := fmt.Sprintf("Ваша заявка на отсутствие с %s по %s рассмотрена. Статус: %s",
		rec.StartDate.Format(time.DateOnly), rec.EndDate.Format(time.DateOnly), decision.ToHuman())
	if err := i.mailer.SendEmail(rec.Employee.Email, "заявка на отсутствие", message); err != nil {
		log.
			WithField("request_id", rec.ID).
			WithError(err).
			Error("ошибка отправки уведомления о рассмотрении заявки")
	}
}
