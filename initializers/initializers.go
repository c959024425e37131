package initializers

import (
	"gorm.io/gorm"

	"hr-profile-backend/config"
	"hr-profile-backend/fiberlog"
	absencehandler "hr-profile-backend/lib/absence"
	authhandler "hr-profile-backend/lib/auth"
	dashboardhandler "hr-profile-backend/lib/dashboard"
	employeehandler "hr-profile-backend/lib/employee"
	exporthandler "hr-profile-backend/lib/export"
	xlsexport "hr-profile-backend/lib/export/xls"
	feedbackhandler "hr-profile-backend/lib/feedback"
	"hr-profile-backend/lib/polish"
	"hr-profile-backend/lib/smtp"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() *gorm.DB {
	LoggerConfig = InitLogger()
	config.InitConfig()
	dbHandle := InitDBConnection()
	InitSmtp()
	xlsexport.NewHandler()
	polisher := polish.NewHandler()
	authhandler.NewHandler(dbHandle)
	employeehandler.NewHandler(dbHandle)
	absencehandler.NewHandler(dbHandle, smtp.Instance)
	feedbackhandler.NewHandler(dbHandle, polisher)
	dashboardhandler.NewHandler(dbHandle)
	exporthandler.NewHandler(dbHandle)
	return dbHandle
}
