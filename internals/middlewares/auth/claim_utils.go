// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "quranku_backend/internals/features/users/user/model"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Authorization header, fallback to cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// tolerant split: double spaces & case-insensitive scheme
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.TrimSpace(fields[1])
	tok = strings.Trim(tok, "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	default:
		return fmt.Errorf("invalid exp claim type")
	}

	if time.Now().Add(-skew).Unix() > expUnix {
		return fmt.Errorf("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		// some issuers use sub
		raw, _ = claims["sub"].(string)
	}
	if raw == "" {
		return uuid.Nil, errors.New("missing user id claim")
	}
	return uuid.Parse(raw)
}

/* ======== User lookup ======== */

// loadLiveUser resolves the user row behind the token. A blocked account is
// indistinguishable from a missing one at this layer: both yield no identity.
func loadLiveUser(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Select("id", "user_name", "email", "role", "account_status").
		First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

/* ======== Locals ======== */

func storeClaimsToLocals(c *fiber.Ctx, u *userModel.UserModel) {
	c.Locals("user_id", u.ID.String())
	c.Locals("user_name", u.UserName)
	c.Locals("user_email", u.Email)
	c.Locals("userRole", u.Role)
	c.Locals("account_status", u.AccountStatus)
}
