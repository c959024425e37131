package db

import (
	"hr-profile-backend/models"
	dbmodels "hr-profile-backend/models/db"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedEmployee struct {
	name     string
	email    string
	role     models.Role
	position string
	phone    string
	address  string
}

var seedEmployees = []seedEmployee{
	{name: "Alice Manager", email: "alice.manager@example.com", role: models.ManagerRole, position: "HR Manager", phone: "123-456-7890", address: "123 Main St, City"},
	{name: "David Manager", email: "david.manager@example.com", role: models.ManagerRole, position: "Operations Manager", phone: "321-654-0987", address: "789 Oak St, City"},
	{name: "Bob Employee", email: "bob.employee@example.com", role: models.EmployeeRole, position: "Software Engineer", phone: "987-654-3210", address: "456 Elm St, City"},
	{name: "Eve Employee", email: "eve.employee@example.com", role: models.EmployeeRole, position: "QA Analyst", phone: "555-123-4567", address: "101 Pine St, City"},
	{name: "Frank Employee", email: "frank.employee@example.com", role: models.EmployeeRole, position: "DevOps Engineer", phone: "444-222-1111", address: "202 Maple St, City"},
	{name: "Charlie Coworker", email: "charlie.coworker@example.com", role: models.CoworkerRole, position: "Product Designer"},
	{name: "Grace Coworker", email: "grace.coworker@example.com", role: models.CoworkerRole, position: "UX Researcher"},
}

type seedFeedback struct {
	text         string
	polishedText string
	authorEmail  string
	targetEmail  string
}

var seedFeedbacks = []seedFeedback{
	{text: "Great teamwork!", polishedText: "Excellent collaboration and support.", authorEmail: "charlie.coworker@example.com", targetEmail: "bob.employee@example.com"},
	{text: "Very helpful during onboarding.", polishedText: "Provided outstanding support for new hires.", authorEmail: "grace.coworker@example.com", targetEmail: "eve.employee@example.com"},
	{text: "Quick to resolve issues.", polishedText: "Demonstrates excellent problem-solving skills.", authorEmail: "charlie.coworker@example.com", targetEmail: "frank.employee@example.com"},
	{text: "Always positive and energetic.", polishedText: "Brings great energy to the team.", authorEmail: "grace.coworker@example.com", targetEmail: "bob.employee@example.com"},
	{text: "Excellent leadership.", polishedText: "Shows strong leadership and management skills.", authorEmail: "bob.employee@example.com", targetEmail: "alice.manager@example.com"},
}

type seedAbsence struct {
	ownerEmail string
	startDate  string
	endDate    string
	status     models.AbsenceStatus
}

var seedAbsences = []seedAbsence{
	{ownerEmail: "bob.employee@example.com", startDate: "2025-11-10", endDate: "2025-11-15", status: models.AbsencePendingStatus},
	{ownerEmail: "eve.employee@example.com", startDate: "2025-12-01", endDate: "2025-12-05", status: models.AbsenceApprovedStatus},
	{ownerEmail: "frank.employee@example.com", startDate: "2025-11-20", endDate: "2025-11-22", status: models.AbsenceRejectedStatus},
	{ownerEmail: "bob.employee@example.com", startDate: "2026-01-10", endDate: "2026-01-12", status: models.AbsenceApprovedStatus},
	{ownerEmail: "eve.employee@example.com", startDate: "2026-02-15", endDate: "2026-02-18", status: models.AbsencePendingStatus},
}

// Preload - административное предзаполнение справочника сотрудников.
// Выполняется только на пустой таблице
func Preload(db *gorm.DB, seedPassword string) {
	var count int64
	if err := db.Model(&dbmodels.Employee{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("ошибка проверки предзаполнения сотрудников")
		return
	}
	if count > 0 {
		log.Info("справочник сотрудников уже заполнен")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("ошибка хеширования пароля для предзаполнения")
		return
	}

	byEmail := map[string]string{}
	for _, emp := range seedEmployees {
		rec := dbmodels.Employee{
			BaseModel: dbmodels.BaseModel{
				ID: uuid.New().String(),
			},
			Name:     emp.name,
			Email:    emp.email,
			Password: string(passwordHash),
			Role:     emp.role,
			Position: emp.position,
		}
		if emp.phone != "" {
			phone := emp.phone
			rec.Phone = &phone
		}
		if emp.address != "" {
			address := emp.address
			rec.Address = &address
		}
		if err := db.Create(&rec).Error; err != nil {
			log.
				WithError(err).
				WithField("email", emp.email).
				Error("ошибка предзаполнения сотрудника")
			return
		}
		byEmail[emp.email] = rec.ID
	}

	for _, fb := range seedFeedbacks {
		polished := fb.polishedText
		rec := dbmodels.Feedback{
			AuthorID:     byEmail[fb.authorEmail],
			EmployeeID:   byEmail[fb.targetEmail],
			Text:         fb.text,
			PolishedText: &polished,
		}
		if err := db.Create(&rec).Error; err != nil {
			log.WithError(err).Error("ошибка предзаполнения отзывов")
			return
		}
	}

	for _, ar := range seedAbsences {
		startDate, _ := time.Parse(time.DateOnly, ar.startDate)
		endDate, _ := time.Parse(time.DateOnly, ar.endDate)
		rec := dbmodels.AbsenceRequest{
			EmployeeID: byEmail[ar.ownerEmail],
			StartDate:  startDate,
			EndDate:    endDate,
			Status:     ar.status,
		}
		if err := db.Create(&rec).Error; err != nil {
			log.WithError(err).Error("ошибка предзаполнения заявок на отсутствие")
			return
		}
	}

	log.Info("справочник сотрудников предзаполнен")
}
