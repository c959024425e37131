package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hr-profile-backend/controllers"
	dashboardhandler "hr-profile-backend/lib/dashboard"
	"hr-profile-backend/middleware"
	apimodels "hr-profile-backend/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App, db *gorm.DB) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(), middleware.SessionResolver(db)).Get("", controller.view)
	})
}

// @Summary Дашборд
// @Tags Дашборд
// @Description Дашборд, состав зависит от роли текущего пользователя
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /dashboard [get]
func (c *dashboardApiController) view(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	view, err := dashboardhandler.Instance.View(subject)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
