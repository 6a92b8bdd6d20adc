package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/constants"
	activityService "quranku_backend/internals/features/progress/activity_logs/service"
	authHelper "quranku_backend/internals/features/users/auth/helper"
	authModel "quranku_backend/internals/features/users/auth/model"
	userModel "quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// refresh tokens are stored hashed; leaking the table must not leak sessions
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func buildAccessClaims(u *userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        u.ID.String(),
		"sub":       u.ID.String(),
		"user_name": u.UserName,
		"email":     u.Email,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokenPair(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (string, error) {
	now := nowUTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	if err := db.Create(&authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: computeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return "", err
	}

	setRefreshCookie(c, refresh, now)
	return access, nil
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   configs.GetEnv("APP_ENV", "development") == "production",
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/api/auth",
	})
}

/* ==========================
   REGISTER
========================== */

// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(input); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] register lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:      input.UserName,
		Email:         input.Email,
		Password:      hashed,
		Role:          constants.RoleStudent,
		AccountStatus: constants.AccountStatusPending,
	}
	// allow-listed emails boot straight into an approved admin account
	if configs.IsAdminEmail(input.Email) {
		user.Role = constants.RoleAdmin
		user.AccountStatus = constants.AccountStatusApproved
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] register create: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Registration successful, your account is awaiting approval", fiber.Map{
		"id":             user.ID,
		"user_name":      user.UserName,
		"email":          user.Email,
		"role":           user.Role,
		"account_status": user.AccountStatus,
	})
}

/* ==========================
   LOGIN
========================== */

// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(input); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	var user userModel.UserModel
	if err := db.First(&user, "email = ?", input.Email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if user.AccountStatus == constants.AccountStatusBlocked {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := issueTokenPair(db, c, &user)
	if err != nil {
		log.Printf("[ERROR] login issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	activityService.Record(db, user.ID, constants.ActivityLogin, "Signed in")

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token":   access,
		"id":             user.ID,
		"user_name":      user.UserName,
		"email":          user.Email,
		"role":           user.Role,
		"account_status": user.AccountStatus,
	})
}

/* ==========================
   GOOGLE SIGN-IN
========================== */

// POST /api/auth/google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(input); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	clientID := configs.GetEnv("GOOGLE_CLIENT_ID")
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token has no email")
	}

	var user userModel.UserModel
	err = db.First(&user, "email = ?", email).Error
	switch {
	case err == nil:
		if user.GoogleID == nil {
			if err := db.Model(&user).Update("google_id", claimSet.Sub).Error; err != nil {
				log.Printf("[ERROR] google link: %v", err)
			}
		}
	case err == gorm.ErrRecordNotFound:
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		user = userModel.UserModel{
			UserName:      name,
			Email:         email,
			Password:      uuid.NewString(), // placeholder, password login stays unusable
			GoogleID:      &claimSet.Sub,
			Role:          constants.RoleStudent,
			AccountStatus: constants.AccountStatusPending,
		}
		if configs.IsAdminEmail(email) {
			user.Role = constants.RoleAdmin
			user.AccountStatus = constants.AccountStatusApproved
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] google register: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
		}
	default:
		log.Printf("[ERROR] google lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if user.AccountStatus == constants.AccountStatusBlocked {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := issueTokenPair(db, c, &user)
	if err != nil {
		log.Printf("[ERROR] google issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	activityService.Record(db, user.ID, constants.ActivityLogin, "Signed in with Google")

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token":   access,
		"id":             user.ID,
		"user_name":      user.UserName,
		"email":          user.Email,
		"role":           user.Role,
		"account_status": user.AccountStatus,
	})
}

/* ==========================
   LOGOUT
========================== */

// POST /api/auth/logout — blacklists the access token and revokes the
// refresh session.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No token provided")
	}

	expiredAt := nowUTC().Add(accessTTLDefault)
	if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}

	if err := db.Create(&authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error; err != nil {
		log.Printf("[ERROR] logout blacklist: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}

	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		hash := computeRefreshHash(refresh, configs.JWTRefreshSecret)
		if err := db.Model(&authModel.RefreshToken{}).
			Where("token_hash = ? AND revoked_at IS NULL", hash).
			Update("revoked_at", nowUTC()).Error; err != nil {
			log.Printf("[ERROR] logout revoke refresh: %v", err)
		}
	}
	clearRefreshCookie(c)

	return helper.JsonOK(c, "Logout successful", nil)
}
