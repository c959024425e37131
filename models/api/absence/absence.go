package absenceapimodels

import (
	"hr-profile-backend/models"
	"time"

	"github.com/pkg/errors"
)

type AbsenceRequest struct {
	ID           string               `json:"id"`
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name,omitempty"`
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Status       models.AbsenceStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

type CreateRequest struct {
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}

func (r CreateRequest) Validate() error {
	if r.StartDate == "" || r.EndDate == "" {
		return errors.New("не указаны даты отсутствия")
	}
	if _, err := time.Parse(time.DateOnly, r.StartDate); err != nil {
		return errors.New("не указаны даты отсутствия")
	}
	if _, err := time.Parse(time.DateOnly, r.EndDate); err != nil {
		return errors.New("не указаны даты отсутствия")
	}
	return nil
}
