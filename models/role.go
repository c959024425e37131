package models

type Role string

const (
	ManagerRole  Role = "MANAGER"
	EmployeeRole Role = "EMPLOYEE"
	CoworkerRole Role = "COWORKER"
)

var roleHumanName = map[Role]string{
	ManagerRole:  "Руководитель",
	EmployeeRole: "Сотрудник",
	CoworkerRole: "Коллега",
}

func (r Role) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r Role) Valid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r Role) IsManager() bool {
	return r == ManagerRole
}
