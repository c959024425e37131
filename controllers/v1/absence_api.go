package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-profile-backend/controllers"
	absencehandler "hr-profile-backend/lib/absence"
	"hr-profile-backend/middleware"
	"hr-profile-backend/models"
	apimodels "hr-profile-backend/models/api"
	absenceapimodels "hr-profile-backend/models/api/absence"
)

type absenceApiController struct {
	controllers.BaseAPIController
}

func InitAbsenceApiRouters(app *fiber.App, db *gorm.DB) {
	controller := absenceApiController{}
	app.Route("absences", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(), middleware.SessionResolver(db))
		router.Post("", controller.create)
		router.Post(":id/approve", controller.approve)
		router.Post(":id/reject", controller.reject)
	})
}

// @Summary Подать заявку на отсутствие
// @Tags Заявки на отсутствие
// @Description Подать заявку на отсутствие, владельцем становится текущий пользователь
// @Param	start_date	formData	string	true	"дата начала"
// @Param	end_date	formData	string	true	"дата окончания"
// @Success 303
// @Failure 500 {object} apimodels.Response
// @router /absences [post]
func (c *absenceApiController) create(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	var payload absenceapimodels.CreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Redirect("/dashboard?error=missing_dates", fiber.StatusSeeOther)
	}
	_, err := absencehandler.Instance.Request(subject, payload)
	if err != nil {
		if errors.Is(err, absencehandler.ErrValidation) {
			return ctx.Redirect("/dashboard?error=missing_dates", fiber.StatusSeeOther)
		}
		if errors.Is(err, absencehandler.ErrAccessDenied) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

// @Summary Согласовать заявку на отсутствие
// @Tags Заявки на отсутствие
// @Description Согласовать заявку на отсутствие, доступно руководителю
// @Param	id	path	string	true	"идентификатор заявки"
// @Success 303
// @Failure 500 {object} apimodels.Response
// @router /absences/{id}/approve [post]
func (c *absenceApiController) approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.AbsenceApprovedStatus)
}

// @Summary Отклонить заявку на отсутствие
// @Tags Заявки на отсутствие
// @Description Отклонить заявку на отсутствие, доступно руководителю
// @Param	id	path	string	true	"идентификатор заявки"
// @Success 303
// @Failure 500 {object} apimodels.Response
// @router /absences/{id}/reject [post]
func (c *absenceApiController) reject(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.AbsenceRejectedStatus)
}

func (c *absenceApiController) decide(ctx *fiber.Ctx, decision models.AbsenceStatus) error {
	subject := middleware.CurrentSubject(ctx)
	// со страницы сотрудника возврат на неё же
	target := "/dashboard"
	if employeeID := ctx.FormValue("employee_id"); employeeID != "" {
		target = "/employees/" + employeeID
	}
	err := absencehandler.Instance.Decide(subject, ctx.Params("id"), decision)
	if err != nil {
		if errors.Is(err, absencehandler.ErrAccessDenied) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Redirect(target, fiber.StatusSeeOther)
}
