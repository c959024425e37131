package absencestore

import (
	"hr-profile-backend/models"
	dbmodels "hr-profile-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AbsenceRequest) (string, error)
	GetByID(requestID string) (rec *dbmodels.AbsenceRequest, err error)
	SetStatus(requestID string, status models.AbsenceStatus) error
	ListByEmployee(employeeID string) (list []dbmodels.AbsenceRequest, err error)
	ListAll() (list []dbmodels.AbsenceRequest, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AbsenceRequest) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(requestID string) (rec *dbmodels.AbsenceRequest, err error) {
	err = i.db.Model(dbmodels.AbsenceRequest{}).
		Where("id = ?", requestID).
		Preload("Employee").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// SetStatus - статус перезаписывается без проверки текущего значения
func (i impl) SetStatus(requestID string, status models.AbsenceStatus) error {
	return i.db.
		Model(&dbmodels.AbsenceRequest{}).
		Where("id = ?", requestID).
		Update("status", status).
		Error
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.AbsenceRequest, err error) {
	err = i.db.Model(dbmodels.AbsenceRequest{}).
		Where("employee_id = ?", employeeID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll() (list []dbmodels.AbsenceRequest, err error) {
	err = i.db.Model(dbmodels.AbsenceRequest{}).
		Preload("Employee").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
