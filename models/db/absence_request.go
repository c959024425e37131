package dbmodels

import (
	"hr-profile-backend/models"
	absenceapimodels "hr-profile-backend/models/api/absence"
	"time"
)

type AbsenceRequest struct {
	BaseModel
	EmployeeID string    `gorm:"index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	StartDate  time.Time
	EndDate    time.Time
	Status     models.AbsenceStatus `gorm:"type:varchar(50);default:PENDING"`
}

func (r AbsenceRequest) ToModel() absenceapimodels.AbsenceRequest {
	rec := absenceapimodels.AbsenceRequest{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format(time.DateOnly),
		EndDate:    r.EndDate.Format(time.DateOnly),
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
	if r.Employee != nil {
		rec.EmployeeName = r.Employee.Name
	}
	return rec
}
