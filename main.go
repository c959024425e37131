package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"hr-profile-backend/config"
	apiv1 "hr-profile-backend/controllers/v1"
	"hr-profile-backend/db"
	"hr-profile-backend/fiberlog"
	"hr-profile-backend/initializers"
)

func main() {
	dbHandle := initializers.InitAllServices()

	app := fiber.New(fiber.Config{})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	apiv1.InitAuthApiRouters(app)
	apiv1.InitDashboardApiRouters(app, dbHandle)
	apiv1.InitEmployeeApiRouters(app, dbHandle)
	apiv1.InitAbsenceApiRouters(app, dbHandle)
	apiv1.InitFeedbackApiRouters(app, dbHandle)
	apiv1.InitExportApiRouters(app, dbHandle)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		db.Close(dbHandle)
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
