package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-profile-backend/controllers"
	exporthandler "hr-profile-backend/lib/export"
	"hr-profile-backend/middleware"
	apimodels "hr-profile-backend/models/api"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App, db *gorm.DB) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(), middleware.SessionResolver(db))
		router.Get("employees.xlsx", controller.employees)
		router.Get("absences.xlsx", controller.absences)
	})
}

// @Summary Выгрузить справочник сотрудников в Excel
// @Tags Выгрузки
// @Description Выгрузить справочник сотрудников в Excel, доступно руководителю
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /export/employees.xlsx [get]
func (c *exportApiController) employees(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	data, err := exporthandler.Instance.EmployeeList(subject)
	if err != nil {
		if errors.Is(err, exporthandler.ErrAccessDenied) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("employees-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузить заявки на отсутствие в Excel
// @Tags Выгрузки
// @Description Выгрузить заявки на отсутствие в Excel, доступно руководителю
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /export/absences.xlsx [get]
func (c *exportApiController) absences(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	data, err := exporthandler.Instance.AbsenceList(subject)
	if err != nil {
		if errors.Is(err, exporthandler.ErrAccessDenied) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("absences-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
