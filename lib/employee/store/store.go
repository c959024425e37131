package employeestore

import (
	dbmodels "hr-profile-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(employeeID string, updMap map[string]interface{}) error
	GetByID(employeeID string) (rec *dbmodels.Employee, err error)
	GetByIDFull(employeeID string) (rec *dbmodels.Employee, err error)
	FindByEmail(email string) (rec *dbmodels.Employee, err error)
	List() (list []dbmodels.Employee, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(employeeID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Updates(updMap).
		Error
}

func (i impl) GetByID(employeeID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("id = ?", employeeID).
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

// GetByIDFull - сотрудник вместе с отзывами и заявками на отсутствие
func (i impl) GetByIDFull(employeeID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Preload("Feedbacks").
		Preload("Feedbacks.Author").
		Preload("AbsenceRequests").
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

func (i impl) FindByEmail(email string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("email = ?", email).
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

func (i impl) List() (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Preload("Feedbacks").
		Preload("Feedbacks.Author").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
