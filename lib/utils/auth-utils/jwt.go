package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"hr-profile-backend/config"
	"hr-profile-backend/models"
)

func GetToken(employeeID, name string, role models.Role) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name": name,
		"sub":  employeeID,
		"role": string(role),
		"exp":  time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// SessionCookie - сессионная кука с токеном, время жизни совпадает с токеном
func SessionCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     config.Conf.Auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   config.Conf.Auth.JWTExpireInSec,
	}
}

func ExpiredSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     config.Conf.Auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	}
}
