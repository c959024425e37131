package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-profile-backend/controllers"
	feedbackhandler "hr-profile-backend/lib/feedback"
	"hr-profile-backend/middleware"
	apimodels "hr-profile-backend/models/api"
	feedbackapimodels "hr-profile-backend/models/api/feedback"
)

type feedbackApiController struct {
	controllers.BaseAPIController
}

func InitFeedbackApiRouters(app *fiber.App, db *gorm.DB) {
	controller := feedbackApiController{}
	app.Route("feedbacks", func(router fiber.Router) {
		router.Use(middleware.SessionRequired(), middleware.SessionResolver(db)).Post("", controller.submit)
	})
}

// @Summary Оставить отзыв
// @Tags Отзывы
// @Description Оставить отзыв о сотруднике, опционально с улучшением текста
// @Param	employee_id	formData	string	false	"идентификатор сотрудника, по умолчанию текущий пользователь"
// @Param	text		formData	string	true	"текст отзыва"
// @Param	polish		formData	string	false	"улучшить текст внешним сервисом"
// @Success 303
// @Failure 500 {object} apimodels.Response
// @router /feedbacks [post]
func (c *feedbackApiController) submit(ctx *fiber.Ctx) error {
	subject := middleware.CurrentSubject(ctx)
	var payload feedbackapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Redirect("/dashboard?error=missing_text", fiber.StatusSeeOther)
	}
	_, err := feedbackhandler.Instance.Submit(ctx.UserContext(), subject, payload)
	if err != nil {
		if errors.Is(err, feedbackhandler.ErrValidation) {
			return ctx.Redirect("/dashboard?error=missing_text", fiber.StatusSeeOther)
		}
		if errors.Is(err, feedbackhandler.ErrAccessDenied) {
			return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}
