package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hr-profile-backend/config"
	"hr-profile-backend/lib/authz"
	employeestore "hr-profile-backend/lib/employee/store"
	authutils "hr-profile-backend/lib/utils/auth-utils"
)

const subjectKey = "session_subject"

// SessionRequired - проверка токена из сессионной куки,
// при отсутствии или истечении токена пользователь отправляется на страницу входа
func SessionRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup: "cookie:" + config.Conf.Auth.SessionCookie,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return toLogin(ctx)
		},
	})
}

// SessionResolver - сопоставление токена с записью сотрудника.
// Токен с неизвестным идентификатором считается недействительным,
// сессия сбрасывается
func SessionResolver(db *gorm.DB) fiber.Handler {
	store := employeestore.NewInstance(db)
	return func(ctx *fiber.Ctx) error {
		claims := authutils.GetClaims(ctx)
		sub, _ := claims["sub"].(string)
		if sub == "" {
			return toLogin(ctx)
		}
		rec, err := store.GetByID(sub)
		if err != nil {
			log.WithField("employee_id", sub).WithError(err).Error("ошибка поиска сотрудника по сессии")
			return toLogin(ctx)
		}
		if rec == nil {
			log.WithField("employee_id", sub).Warn("сессия ссылается на несуществующего сотрудника")
			return toLogin(ctx)
		}
		ctx.Locals(subjectKey, authz.Subject{
			ID:   rec.ID,
			Role: rec.Role,
		})
		return ctx.Next()
	}
}

func CurrentSubject(ctx *fiber.Ctx) authz.Subject {
	subject, ok := ctx.Locals(subjectKey).(authz.Subject)
	if !ok {
		return authz.Subject{}
	}
	return subject
}

func toLogin(ctx *fiber.Ctx) error {
	ctx.Cookie(authutils.ExpiredSessionCookie())
	return ctx.Redirect("/login", fiber.StatusSeeOther)
}
