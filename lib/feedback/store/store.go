package feedbackstore

import (
	dbmodels "hr-profile-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Feedback) (string, error)
	ListByEmployee(employeeID string) (list []dbmodels.Feedback, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Feedback) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.Feedback, err error) {
	err = i.db.Model(dbmodels.Feedback{}).
		Where("employee_id = ?", employeeID).
		Preload("Author").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
