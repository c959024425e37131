package absencehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-profile-backend/lib/authz"
	"hr-profile-backend/models"
	absenceapimodels "hr-profile-backend/models/api/absence"
	dbmodels "hr-profile-backend/models/db"
)

type stubAbsenceStore struct {
	records map[string]*dbmodels.AbsenceRequest
	created *dbmodels.AbsenceRequest
}

func (s *stubAbsenceStore) Create(rec dbmodels.AbsenceRequest) (string, error) {
	s.created = &rec
	return "req-1", nil
}

func (s *stubAbsenceStore) GetByID(requestID string) (*dbmodels.AbsenceRequest, error) {
	return s.records[requestID], nil
}

func (s *stubAbsenceStore) SetStatus(requestID string, status models.AbsenceStatus) error {
	if rec, ok := s.records[requestID]; ok {
		rec.Status = status
	}
	return nil
}

func (s *stubAbsenceStore) ListByEmployee(employeeID string) ([]dbmodels.AbsenceRequest, error) {
	return nil, nil
}

func (s *stubAbsenceStore) ListAll() ([]dbmodels.AbsenceRequest, error) {
	return nil, nil
}

type stubMailer struct {
	to      string
	subject string
	message string
}

func (s *stubMailer) IsConfigured() bool {
	return true
}

func (s *stubMailer) SendEmail(to, subject, message string) error {
	s.to = to
	s.subject = subject
	s.message = message
	return nil
}

func pendingRequest(employee *dbmodels.Employee) *dbmodels.AbsenceRequest {
	rec := dbmodels.AbsenceRequest{
		EmployeeID: "emp-1",
		Employee:   employee,
		Status:     models.AbsencePendingStatus,
	}
	rec.ID = "req-1"
	return &rec
}

func TestRequest(t *testing.T) {
	t.Run(`владельцем заявки становится текущий пользователь`, func(t *testing.T) {
		store := &stubAbsenceStore{}
		i := impl{absenceStore: store}
		actor := authz.Subject{ID: "emp-1", Role: models.EmployeeRole}
		id, err := i.Request(actor, absenceapimodels.CreateRequest{
			StartDate: "2025-07-01",
			EndDate:   "2025-07-14",
		})
		require.Nil(t, err)
		require.Equal(t, "req-1", id)
		require.Equal(t, "emp-1", store.created.EmployeeID)
		require.Equal(t, models.AbsencePendingStatus, store.created.Status)
	})

	t.Run(`заявка без дат не создается`, func(t *testing.T) {
		store := &stubAbsenceStore{}
		i := impl{absenceStore: store}
		actor := authz.Subject{ID: "emp-1", Role: models.EmployeeRole}
		_, err := i.Request(actor, absenceapimodels.CreateRequest{StartDate: "2025-07-01"})
		require.ErrorIs(t, err, ErrValidation)
		require.Nil(t, store.created)
	})
}

func TestDecide(t *testing.T) {
	manager := authz.Subject{ID: "mgr-1", Role: models.ManagerRole}

	t.Run(`решение доступно только руководителю`, func(t *testing.T) {
		store := &stubAbsenceStore{records: map[string]*dbmodels.AbsenceRequest{"req-1": pendingRequest(nil)}}
		i := impl{absenceStore: store}
		actor := authz.Subject{ID: "emp-2", Role: models.EmployeeRole}
		err := i.Decide(actor, "req-1", models.AbsenceApprovedStatus)
		require.ErrorIs(t, err, ErrAccessDenied)
		require.Equal(t, models.AbsencePendingStatus, store.records["req-1"].Status)
	})

	t.Run(`согласование заявки с уведомлением владельца`, func(t *testing.T) {
		employee := &dbmodels.Employee{Name: "Боб", Email: "bob.employee@example.com"}
		store := &stubAbsenceStore{records: map[string]*dbmodels.AbsenceRequest{"req-1": pendingRequest(employee)}}
		mailer := &stubMailer{}
		i := impl{absenceStore: store, mailer: mailer}
		err := i.Decide(manager, "req-1", models.AbsenceApprovedStatus)
		require.Nil(t, err)
		require.Equal(t, models.AbsenceApprovedStatus, store.records["req-1"].Status)
		require.Equal(t, "bob.employee@example.com", mailer.to)
	})

	t.Run(`повторное решение перезаписывает статус`, func(t *testing.T) {
		rec := pendingRequest(nil)
		rec.Status = models.AbsenceApprovedStatus
		store := &stubAbsenceStore{records: map[string]*dbmodels.AbsenceRequest{"req-1": rec}}
		i := impl{absenceStore: store}
		err := i.Decide(manager, "req-1", models.AbsenceRejectedStatus)
		require.Nil(t, err)
		require.Equal(t, models.AbsenceRejectedStatus, store.records["req-1"].Status)
	})

	t.Run(`решение по несуществующей заявке`, func(t *testing.T) {
		store := &stubAbsenceStore{}
		i := impl{absenceStore: store}
		err := i.Decide(manager, "req-404", models.AbsenceApprovedStatus)
		require.Nil(t, err)
	})

	t.Run(`недопустимый статус решения`, func(t *testing.T) {
		store := &stubAbsenceStore{records: map[string]*dbmodels.AbsenceRequest{"req-1": pendingRequest(nil)}}
		i := impl{absenceStore: store}
		err := i.Decide(manager, "req-1", models.AbsencePendingStatus)
		require.NotNil(t, err)
		require.Equal(t, models.AbsencePendingStatus, store.records["req-1"].Status)
	})
}
