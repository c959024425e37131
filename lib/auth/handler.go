package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	employeestore "hr-profile-backend/lib/employee/store"
	authutils "hr-profile-backend/lib/utils/auth-utils"
)

// ErrInvalidCredentials - почта не найдена или пароль не подошел,
// наружу причина не раскрывается
var ErrInvalidCredentials = errors.New("неверная почта или пароль")

type Provider interface {
	Login(email, password string) (token string, err error)
}

var Instance Provider

func NewHandler(db *gorm.DB) {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) Login(email, password string) (token string, err error) {
	logger := log.WithField("email", email)
	employee, err := i.employeeStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска сотрудника по почте")
		return "", err
	}
	if employee == nil {
		logger.Debug("сотрудник с такой почтой не найден")
		return "", ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		logger.Debug("сотрудник не прошел проверку пароля")
		return "", ErrInvalidCredentials
	}
	token, err = authutils.GetToken(employee.ID, employee.Name, employee.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return "", err
	}
	return token, nil
}
