package db

import (
	"fmt"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect возвращает подключение к БД, которое явно передается в обработчики
// и закрывается при остановке сервиса
func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) (*gorm.DB, error) {
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	if migrate {
		if err = AutoMigrateDB(db); err != nil {
			return nil, err
		}
	}
	log.Info("Сервис успешно подключен к БД")
	return db, nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("ошибка получения подключения к БД при остановке")
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.WithError(err).Error("ошибка закрытия подключения к БД")
	}
}
