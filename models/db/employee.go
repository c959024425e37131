package dbmodels

import (
	"hr-profile-backend/models"
	employeeapimodels "hr-profile-backend/models/api/employee"
)

type Employee struct {
	BaseModel
	Name     string      `gorm:"type:varchar(150)"`
	Email    string      `gorm:"type:varchar(255);uniqueIndex"`
	Password string      `gorm:"type:varchar(128)"`
	Role     models.Role `gorm:"type:varchar(50)"`
	Position string      `gorm:"type:varchar(150)"`
	Phone    *string     `gorm:"type:varchar(30)"`
	Address  *string     `gorm:"type:varchar(255)"`

	Feedbacks       []Feedback       `gorm:"foreignKey:EmployeeID"`
	AbsenceRequests []AbsenceRequest `gorm:"foreignKey:EmployeeID"`
}

// ToModel - представление для просмотра профиля.
// Для коллег телефон и адрес скрыты
func (r Employee) ToModel(viewerRole models.Role) employeeapimodels.Employee {
	rec := employeeapimodels.Employee{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		Position: r.Position,
	}
	if viewerRole != models.CoworkerRole {
		rec.Phone = r.Phone
		rec.Address = r.Address
	}
	return rec
}
