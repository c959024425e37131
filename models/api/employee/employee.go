package employeeapimodels

import (
	"hr-profile-backend/models"
	absenceapimodels "hr-profile-backend/models/api/absence"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
)

type Employee struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Position string      `json:"position"`
	Phone    *string     `json:"phone,omitempty"`
	Address  *string     `json:"address,omitempty"`
}

// ProfileView - профиль с отзывами и заявками на отсутствие
type ProfileView struct {
	Employee
	RoleName        string                             `json:"role_name"`
	Feedbacks       []feedbackapimodels.Feedback       `json:"feedbacks"`
	AbsenceRequests []absenceapimodels.AbsenceRequest  `json:"absence_requests"`
}

type UpdateRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Position string `json:"position" form:"position"`
	Role     string `json:"role" form:"role"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

func (r UpdateRequest) Validate() error {
	return nil
}
