package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-profile-backend/controllers"
	employeehandler "hr-profile-backend/lib/employee"
	"hr-profile-backend/middleware"
	apimodels "hr-profile-backend/models/api"
	employeeapimodels "hr-profile-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App, db *gorm.DB) {
	controller := employeeApiController{}
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(), middleware.SessionResolver(db)).Get("", controller.profile)
	})
	app.Route("employees", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(), middleware.SessionResolver(db))
		router.Get(":id", controller.detail)
		router.Post(":id", controller.update)
	})
}

// @Summary Профиль текущего пользователя
// @Tags Сотрудники
// @Description Профиль текущего пользователя с отзывами и заявками
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ProfileView}
// @Failure 500 {object} apimodels.Response
// @router /profile [get]
func (c *employeeApiController) profile(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	view, err := employeehandler.Instance.Profile(subject)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Профиль сотрудника
// @Tags Сотрудники
// @Description Профиль сотрудника, доступен владельцу и руководителю
// @Param	id	path	string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.ProfileView}
// @Failure 404
// @Failure 500 {object} apimodels.Response
// @router /employees/{id} [get]
func (c *employeeApiController) detail(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	view, err := employeehandler.Instance.Get(subject, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, employeehandler.ErrAccessDenied) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		if errors.Is(err, employeehandler.ErrNotFound) {
			return ctx.SendStatus(fiber.StatusNotFound)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Обновить профиль сотрудника
// @Tags Сотрудники
// @Description Обновить профиль сотрудника, роль меняет только руководитель
// @Param	id	path	string	true	"идентификатор сотрудника"
// @Success 303
// @Failure 500 {object} apimodels.Response
// @router /employees/{id} [post]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	employeeID := ctx.Params("id")
	detailPath := "/employees/" + employeeID
	var payload employeeapimodels.UpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Redirect(detailPath, fiber.StatusSeeOther)
	}
	err := employeehandler.Instance.Update(subject, employeeID, payload)
	if err != nil {
		if errors.Is(err, employeehandler.ErrAccessDenied) || errors.Is(err, employeehandler.ErrNotFound) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		if errors.Is(err, employeehandler.ErrEmailTaken) {
			return ctx.Redirect(detailPath+"?error=email_taken", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Redirect(detailPath, fiber.StatusSeeOther)
}
