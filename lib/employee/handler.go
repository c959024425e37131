package employeehandler

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-profile-backend/lib/authz"
	employeestore "hr-profile-backend/lib/employee/store"
	"hr-profile-backend/models"
	absenceapimodels "hr-profile-backend/models/api/absence"
	employeeapimodels "hr-profile-backend/models/api/employee"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
)

var (
	ErrNotFound     = errors.New("сотрудник не найден")
	ErrAccessDenied = errors.New("операция недоступна")
	ErrEmailTaken   = errors.New("сотрудник с такой почтой уже существует")
)

type Provider interface {
	Profile(actor authz.Subject) (view employeeapimodels.ProfileView, err error)
	Get(actor authz.Subject, employeeID string) (view employeeapimodels.ProfileView, err error)
	Update(actor authz.Subject, employeeID string, request employeeapimodels.UpdateRequest) error
	Directory(viewerRole models.Role) (list []employeeapimodels.Employee, err error)
}

var Instance Provider

func NewHandler(db *gorm.DB) {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) Profile(actor authz.Subject) (view employeeapimodels.ProfileView, err error) {
	return i.profileView(actor.ID, actor.Role)
}

func (i impl) Get(actor authz.Subject, employeeID string) (view employeeapimodels.ProfileView, err error) {
	if decision := authz.Decide(actor, employeeID, authz.ActionViewProfile); !decision.Allowed {
		return view, ErrAccessDenied
	}
	return i.profileView(employeeID, actor.Role)
}

func (i impl) Update(actor authz.Subject, employeeID string, request employeeapimodels.UpdateRequest) error {
	if decision := authz.Decide(actor, employeeID, authz.ActionUpdateProfile); !decision.Allowed {
		return ErrAccessDenied
	}
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка поиска сотрудника")
		return err
	}
	if rec == nil {
		return ErrNotFound
	}

	updMap := map[string]interface{}{
		"name":     request.Name,
		"email":    request.Email,
		"position": request.Position,
		"phone":    nilIfEmpty(request.Phone),
		"address":  nilIfEmpty(request.Address),
	}
	// роль меняет только руководитель, для остальных поле игнорируется
	role := models.Role(request.Role)
	if role.Valid() && role != rec.Role {
		if decision := authz.Decide(actor, employeeID, authz.ActionChangeRole); decision.Allowed {
			updMap["role"] = role
		}
	}

	err = i.employeeStore.Update(employeeID, updMap)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка обновления сотрудника")
		return err
	}
	return nil
}

func (i impl) Directory(viewerRole models.Role) (list []employeeapimodels.Employee, err error) {
	recList, err := i.employeeStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, err
	}
	for _, rec := range recList {
		list = append(list, rec.ToModel(viewerRole))
	}
	return list, nil
}

func (i impl) profileView(employeeID string, viewerRole models.Role) (view employeeapimodels.ProfileView, err error) {
	rec, err := i.employeeStore.GetByIDFull(employeeID)
	if err != nil {
		log.
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка поиска сотрудника")
		return view, err
	}
	if rec == nil {
		return view, ErrNotFound
	}
	view = employeeapimodels.ProfileView{
		Employee:        rec.ToModel(viewerRole),
		RoleName:        rec.Role.ToHuman(),
		Feedbacks:       []feedbackapimodels.Feedback{},
		AbsenceRequests: []absenceapimodels.AbsenceRequest{},
	}
	for _, fb := range rec.Feedbacks {
		view.Feedbacks = append(view.Feedbacks, fb.ToModel())
	}
	for _, ar := range rec.AbsenceRequests {
		view.AbsenceRequests = append(view.AbsenceRequests, ar.ToModel())
	}
	return view, nil
}

func nilIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
