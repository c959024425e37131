package employeehandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-profile-backend/lib/authz"
	"hr-profile-backend/models"
	employeeapimodels "hr-profile-backend/models/api/employee"
	dbmodels "hr-profile-backend/models/db"
)

type stubEmployeeStore struct {
	rec       *dbmodels.Employee
	updatedID string
	updMap    map[string]interface{}
}

func (s *stubEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	return "", nil
}

func (s *stubEmployeeStore) Update(employeeID string, updMap map[string]interface{}) error {
	s.updatedID = employeeID
	s.updMap = updMap
	return nil
}

func (s *stubEmployeeStore) GetByID(employeeID string) (*dbmodels.Employee, error) {
	if s.rec != nil && s.rec.ID == employeeID {
		return s.rec, nil
	}
	return nil, nil
}

func (s *stubEmployeeStore) GetByIDFull(employeeID string) (*dbmodels.Employee, error) {
	return s.GetByID(employeeID)
}

func (s *stubEmployeeStore) FindByEmail(email string) (*dbmodels.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeStore) List() ([]dbmodels.Employee, error) {
	return nil, nil
}

func employeeRecord() *dbmodels.Employee {
	rec := dbmodels.Employee{
		Name:     "Боб",
		Email:    "bob.employee@example.com",
		Role:     models.EmployeeRole,
		Position: "Инженер",
	}
	rec.ID = "emp-1"
	return &rec
}

func TestUpdate(t *testing.T) {
	request := employeeapimodels.UpdateRequest{
		Name:     "Боб Иванов",
		Email:    "bob.employee@example.com",
		Position: "Старший инженер",
	}

	t.Run(`чужой профиль недоступен сотруднику`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "emp-2", Role: models.EmployeeRole}
		err := i.Update(actor, "emp-1", request)
		require.ErrorIs(t, err, ErrAccessDenied)
		require.Nil(t, store.updMap)
	})

	t.Run(`владелец обновляет свой профиль`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "emp-1", Role: models.EmployeeRole}
		err := i.Update(actor, "emp-1", request)
		require.Nil(t, err)
		require.Equal(t, "emp-1", store.updatedID)
		require.Equal(t, "Боб Иванов", store.updMap["name"])
		require.Equal(t, "Старший инженер", store.updMap["position"])
	})

	t.Run(`роль в запросе сотрудника игнорируется`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "emp-1", Role: models.EmployeeRole}
		withRole := request
		withRole.Role = string(models.ManagerRole)
		err := i.Update(actor, "emp-1", withRole)
		require.Nil(t, err)
		require.NotContains(t, store.updMap, "role")
	})

	t.Run(`руководитель меняет роль`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "mgr-1", Role: models.ManagerRole}
		withRole := request
		withRole.Role = string(models.CoworkerRole)
		err := i.Update(actor, "emp-1", withRole)
		require.Nil(t, err)
		require.Equal(t, models.CoworkerRole, store.updMap["role"])
	})

	t.Run(`неизвестный сотрудник`, func(t *testing.T) {
		store := &stubEmployeeStore{}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "mgr-1", Role: models.ManagerRole}
		err := i.Update(actor, "emp-404", request)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run(`пустые телефон и адрес сбрасываются в NULL`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "emp-1", Role: models.EmployeeRole}
		err := i.Update(actor, "emp-1", request)
		require.Nil(t, err)
		require.Nil(t, store.updMap["phone"])
		require.Nil(t, store.updMap["address"])
	})
}

func TestGet(t *testing.T) {
	t.Run(`коллеге чужой профиль недоступен`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "cow-1", Role: models.CoworkerRole}
		_, err := i.Get(actor, "emp-1")
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run(`руководителю доступен любой профиль`, func(t *testing.T) {
		store := &stubEmployeeStore{rec: employeeRecord()}
		i := impl{employeeStore: store}
		actor := authz.Subject{ID: "mgr-1", Role: models.ManagerRole}
		view, err := i.Get(actor, "emp-1")
		require.Nil(t, err)
		require.Equal(t, "emp-1", view.Employee.ID)
	})
}
