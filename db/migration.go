package db

import (
	dbmodels "hr-profile-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := db.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := db.AutoMigrate(&dbmodels.AbsenceRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AbsenceRequest")
	}
	if err := db.AutoMigrate(&dbmodels.Feedback{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Feedback")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
