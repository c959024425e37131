package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-profile-backend/controllers"
	authhandler "hr-profile-backend/lib/auth"
	authutils "hr-profile-backend/lib/utils/auth-utils"
	apimodels "hr-profile-backend/models/api"
	authapimodels "hr-profile-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Post("login", controller.login)
	app.Post("logout", controller.logout)
}

// @Summary Вход в систему
// @Tags Аутентификация
// @Description Вход в систему, при успехе устанавливается сессионная кука
// @Param	email		formData	string	true	"почта"
// @Param	password	formData	string	true	"пароль"
// @Success 303
// @Failure 500 {object} apimodels.Response
// @router /login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Redirect("/login?error=missing", fiber.StatusSeeOther)
	}
	if err := payload.Validate(); err != nil {
		return ctx.Redirect("/login?error=missing", fiber.StatusSeeOther)
	}
	token, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, authhandler.ErrInvalidCredentials) {
			return ctx.Redirect("/login?error=invalid", fiber.StatusSeeOther)
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Cookie(authutils.SessionCookie(token))
	return ctx.Redirect("/dashboard", fiber.StatusSeeOther)
}

// @Summary Выход из системы
// @Tags Аутентификация
// @Description Выход из системы, сессионная кука сбрасывается
// @Success 303
// @router /logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	ctx.Cookie(authutils.ExpiredSessionCookie())
	return ctx.Redirect("/", fiber.StatusSeeOther)
}
