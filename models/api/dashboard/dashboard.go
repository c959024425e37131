package dashboardapimodels

import (
	absenceapimodels "hr-profile-backend/models/api/absence"
	employeeapimodels "hr-profile-backend/models/api/employee"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
)

// ManagerView - сводка по всем сотрудникам и заявкам
type ManagerView struct {
	Stats           Stats                             `json:"stats"`
	Employees       []employeeapimodels.Employee      `json:"employees"`
	AbsenceRequests []absenceapimodels.AbsenceRequest `json:"absence_requests"`
}

type Stats struct {
	TotalEmployees  int `json:"total_employees"`
	PendingAbsences int `json:"pending_absences"`
	TotalFeedback   int `json:"total_feedback"`
}

// EmployeeView - собственный профиль, заявки и полученные отзывы
type EmployeeView struct {
	Profile         employeeapimodels.Employee        `json:"profile"`
	AbsenceRequests []absenceapimodels.AbsenceRequest `json:"absence_requests"`
	Feedbacks       []feedbackapimodels.Feedback      `json:"feedbacks"`
}

// CoworkerView - справочник коллег с последними отзывами
type CoworkerView struct {
	Employees []CoworkerCard `json:"employees"`
}

type CoworkerCard struct {
	employeeapimodels.Employee
	RecentFeedbacks []feedbackapimodels.Feedback `json:"recent_feedbacks"`
}
