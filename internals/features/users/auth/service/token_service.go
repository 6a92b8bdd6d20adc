package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/constants"
	authModel "quranku_backend/internals/features/users/auth/model"
	userModel "quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

// POST /api/auth/refresh-token — cookie based, rotates the refresh token on
// every use. A replayed old cookie finds its hash already revoked and dies.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No refresh token")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := computeRefreshHash(refreshCookie, configs.JWTRefreshSecret)
	var session authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		Limit(1).
		Find(&session).Error; err != nil {
		log.Printf("[ERROR] refresh lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh failed")
	}
	if session.ID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}
	if user.AccountStatus == constants.AccountStatusBlocked {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	// rotate: revoke the old session before minting the new pair
	if err := db.Model(&authModel.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", session.ID).
		Update("revoked_at", nowUTC()).Error; err != nil {
		log.Printf("[ERROR] refresh revoke old: %v", err)
	}

	access, err := issueTokenPair(db, c, &user)
	if err != nil {
		log.Printf("[ERROR] refresh issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh failed")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": access,
	})
}
