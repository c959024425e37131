package exporthandler

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	absencestore "hr-profile-backend/lib/absence/store"
	"hr-profile-backend/lib/authz"
	employeestore "hr-profile-backend/lib/employee/store"
	xlsexport "hr-profile-backend/lib/export/xls"
)

var ErrAccessDenied = errors.New("операция недоступна")

type Provider interface {
	EmployeeList(actor authz.Subject) (*bytes.Buffer, error)
	AbsenceList(actor authz.Subject) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(db *gorm.DB) {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db),
		absenceStore:  absencestore.NewInstance(db),
	}
}

type impl struct {
	employeeStore employeestore.Provider
	absenceStore  absencestore.Provider
}

// выгрузки доступны только руководителю
func (i impl) EmployeeList(actor authz.Subject) (*bytes.Buffer, error) {
	if decision := authz.Decide(actor, "", authz.ActionExportReports); !decision.Allowed {
		return nil, ErrAccessDenied
	}
	list, err := i.employeeStore.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников для выгрузки")
		return nil, err
	}
	return xlsexport.Instance.ExportEmployeeList(list)
}

func (i impl) AbsenceList(actor authz.Subject) (*bytes.Buffer, error) {
	if decision := authz.Decide(actor, "", authz.ActionExportReports); !decision.Allowed {
		return nil, ErrAccessDenied
	}
	list, err := i.absenceStore.ListAll()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок для выгрузки")
		return nil, err
	}
	return xlsexport.Instance.ExportAbsenceList(list)
}
