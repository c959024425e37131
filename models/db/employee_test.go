package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-profile-backend/models"
)

func TestEmployeeToModel(t *testing.T) {
	phone := "+7 900 000-00-00"
	address := "Москва, ул. Ленина, 1"
	rec := Employee{
		Name:    "Боб",
		Email:   "bob.employee@example.com",
		Role:    models.EmployeeRole,
		Phone:   &phone,
		Address: &address,
	}
	rec.ID = "emp-1"

	t.Run(`руководитель видит контакты`, func(t *testing.T) {
		view := rec.ToModel(models.ManagerRole)
		require.NotNil(t, view.Phone)
		require.NotNil(t, view.Address)
	})

	t.Run(`владелец видит контакты`, func(t *testing.T) {
		view := rec.ToModel(models.EmployeeRole)
		require.NotNil(t, view.Phone)
		require.NotNil(t, view.Address)
	})

	t.Run(`для коллеги контакты скрыты`, func(t *testing.T) {
		view := rec.ToModel(models.CoworkerRole)
		require.Nil(t, view.Phone)
		require.Nil(t, view.Address)
	})
}
