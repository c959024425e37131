package dashboardhandler

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	absencestore "hr-profile-backend/lib/absence/store"
	"hr-profile-backend/lib/authz"
	employeestore "hr-profile-backend/lib/employee/store"
	feedbackstore "hr-profile-backend/lib/feedback/store"
	"hr-profile-backend/models"
	absenceapimodels "hr-profile-backend/models/api/absence"
	dashboardapimodels "hr-profile-backend/models/api/dashboard"
	employeeapimodels "hr-profile-backend/models/api/employee"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
	dbmodels "hr-profile-backend/models/db"
)

const recentFeedbackLimit = 2

type Provider interface {
	View(actor authz.Subject) (view interface{}, err error)
}

var Instance Provider

func NewHandler(db *gorm.DB) {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db),
		absenceStore:  absencestore.NewInstance(db),
		feedbackStore: feedbackstore.NewInstance(db),
	}
}

type impl struct {
	employeeStore employeestore.Provider
	absenceStore  absencestore.Provider
	feedbackStore feedbackstore.Provider
}

// View - состав дашборда зависит от роли:
// руководитель видит всех сотрудников и все заявки,
// сотрудник - свой профиль, заявки и полученные отзывы,
// коллега - справочник с последними отзывами
func (i impl) View(actor authz.Subject) (view interface{}, err error) {
	switch actor.Role {
	case models.ManagerRole:
		return i.managerView()
	case models.EmployeeRole:
		return i.employeeView(actor)
	case models.CoworkerRole:
		return i.coworkerView(actor)
	}
	return nil, nil
}

func (i impl) managerView() (view dashboardapimodels.ManagerView, err error) {
	employees, err := i.employeeStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return view, err
	}
	requests, err := i.absenceStore.ListAll()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок")
		return view, err
	}
	view = dashboardapimodels.ManagerView{
		Employees:       []employeeapimodels.Employee{},
		AbsenceRequests: []absenceapimodels.AbsenceRequest{},
	}
	view.Stats.TotalEmployees = len(employees)
	for _, rec := range employees {
		view.Employees = append(view.Employees, rec.ToModel(models.ManagerRole))
		view.Stats.TotalFeedback += len(rec.Feedbacks)
	}
	for _, rec := range requests {
		if rec.Status == models.AbsencePendingStatus {
			view.Stats.PendingAbsences++
		}
		view.AbsenceRequests = append(view.AbsenceRequests, rec.ToModel())
	}
	return view, nil
}

func (i impl) employeeView(actor authz.Subject) (view dashboardapimodels.EmployeeView, err error) {
	rec, err := i.employeeStore.GetByID(actor.ID)
	if err != nil || rec == nil {
		log.WithField("employee_id", actor.ID).WithError(err).Error("ошибка поиска сотрудника")
		return view, err
	}
	requests, err := i.absenceStore.ListByEmployee(actor.ID)
	if err != nil {
		log.WithField("employee_id", actor.ID).WithError(err).Error("ошибка получения заявок сотрудника")
		return view, err
	}
	feedbacks, err := i.feedbackStore.ListByEmployee(actor.ID)
	if err != nil {
		log.WithField("employee_id", actor.ID).WithError(err).Error("ошибка получения отзывов сотрудника")
		return view, err
	}
	view = dashboardapimodels.EmployeeView{
		Profile:         rec.ToModel(actor.Role),
		AbsenceRequests: []absenceapimodels.AbsenceRequest{},
		Feedbacks:       []feedbackapimodels.Feedback{},
	}
	for _, ar := range requests {
		view.AbsenceRequests = append(view.AbsenceRequests, ar.ToModel())
	}
	for _, fb := range feedbacks {
		view.Feedbacks = append(view.Feedbacks, fb.ToModel())
	}
	return view, nil
}

func (i impl) coworkerView(actor authz.Subject) (view dashboardapimodels.CoworkerView, err error) {
	employees, err := i.employeeStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return view, err
	}
	view = dashboardapimodels.CoworkerView{
		Employees: []dashboardapimodels.CoworkerCard{},
	}
	for _, rec := range employees {
		card := dashboardapimodels.CoworkerCard{
			Employee:        rec.ToModel(actor.Role),
			RecentFeedbacks: recentFeedbacks(rec.Feedbacks),
		}
		view.Employees = append(view.Employees, card)
	}
	return view, nil
}

func recentFeedbacks(list []dbmodels.Feedback) []feedbackapimodels.Feedback {
	sorted := make([]dbmodels.Feedback, len(list))
	copy(sorted, list)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].CreatedAt.After(sorted[b].CreatedAt)
	})
	result := []feedbackapimodels.Feedback{}
	for idx, fb := range sorted {
		if idx == recentFeedbackLimit {
			break
		}
		result = append(result, fb.ToModel())
	}
	return result
}
