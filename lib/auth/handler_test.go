package authhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-profile-backend/config"
	"hr-profile-backend/models"
	dbmodels "hr-profile-backend/models/db"
)

type stubEmployeeStore struct {
	rec *dbmodels.Employee
	err error
}

func (s *stubEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	return "", nil
}

func (s *stubEmployeeStore) Update(employeeID string, updMap map[string]interface{}) error {
	return nil
}

func (s *stubEmployeeStore) GetByID(employeeID string) (*dbmodels.Employee, error) {
	return s.rec, s.err
}

func (s *stubEmployeeStore) GetByIDFull(employeeID string) (*dbmodels.Employee, error) {
	return s.rec, s.err
}

func (s *stubEmployeeStore) FindByEmail(email string) (*dbmodels.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.rec != nil && s.rec.Email == email {
		return s.rec, nil
	}
	return nil, nil
}

func (s *stubEmployeeStore) List() ([]dbmodels.Employee, error) {
	return nil, nil
}

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
}

func bobRecord(t *testing.T) *dbmodels.Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.Nil(t, err)
	rec := dbmodels.Employee{
		Name:     "Боб",
		Email:    "bob.employee@example.com",
		Password: string(hash),
		Role:     models.EmployeeRole,
	}
	rec.ID = "emp-1"
	return &rec
}

func TestLogin(t *testing.T) {
	initTestConfig()

	t.Run(`успешный вход`, func(t *testing.T) {
		i := impl{employeeStore: &stubEmployeeStore{rec: bobRecord(t)}}
		token, err := i.Login("bob.employee@example.com", "password123")
		require.Nil(t, err)
		require.NotEmpty(t, token)
	})

	t.Run(`неверный пароль`, func(t *testing.T) {
		i := impl{employeeStore: &stubEmployeeStore{rec: bobRecord(t)}}
		token, err := i.Login("bob.employee@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Empty(t, token)
	})

	t.Run(`неизвестная почта`, func(t *testing.T) {
		i := impl{employeeStore: &stubEmployeeStore{rec: bobRecord(t)}}
		token, err := i.Login("nobody@example.com", "password123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Empty(t, token)
	})

	t.Run(`ошибка хранилища`, func(t *testing.T) {
		storeErr := errors.New("нет соединения с БД")
		i := impl{employeeStore: &stubEmployeeStore{err: storeErr}}
		token, err := i.Login("bob.employee@example.com", "password123")
		require.ErrorIs(t, err, storeErr)
		require.Empty(t, token)
	})
}
