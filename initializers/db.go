package initializers

import (
	"gorm.io/gorm"

	"hr-profile-backend/config"
	"hr-profile-backend/db"
)

func InitDBConnection() *gorm.DB {
	dbHandle, err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	if *config.Conf.Database.PreloadOnStart {
		db.Preload(dbHandle, config.Conf.Auth.SeedPassword)
	}
	return dbHandle
}
