// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"armonia_backend/internals/configs"
	authModel "armonia_backend/internals/features/users/auth/model"
	profileModel "armonia_backend/internals/features/people/profiles/model"
	userModel "armonia_backend/internals/features/users/user/model"
	helper "armonia_backend/internals/helpers"
)

func accessTTL() time.Duration {
	minutes := 15
	if v := configs.GetEnv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			minutes = n
		}
	}
	return time.Duration(minutes) * time.Minute
}

func refreshTTL() time.Duration {
	days := 7
	if v := configs.GetEnv("REFRESH_TOKEN_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

// buildAccessClaims arma los claims del access token. El tenant (academy_id)
// y el profile_id salen del perfil del usuario, no del request.
func buildAccessClaims(user userModel.UserModel, profile *profileModel.ProfileModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
	if profile != nil {
		claims["academy_id"] = profile.ProfileAcademyID.String()
		claims["profile_id"] = profile.ProfileID.String()
	}
	return claims
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret vacío")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func computeRefreshHash(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

// IssueTokens firma access+refresh, persiste el hash del refresh y
// setea ambos como cookies httpOnly.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, user userModel.UserModel, profile *profileModel.ProfileModel) (string, error) {
	now := time.Now().UTC()

	accessToken, err := signToken(buildAccessClaims(user, profile, now), configs.JWTSecret)
	if err != nil {
		return "", err
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL()).Unix(),
	}
	refreshToken, err := signToken(refreshClaims, configs.JWTRefreshSecret)
	if err != nil {
		return "", err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	row := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken),
		ExpiresAt: now.Add(refreshTTL()),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}

	setAuthCookies(c, accessToken, refreshToken, now)
	return accessToken, nil
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTTL()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTTL()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No hay refresh token")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	// el hash debe existir en DB (rotación estricta)
	var row authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", computeRefreshHash(refreshCookie)).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconocido")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	// ROTATE: borra el token viejo antes de emitir el nuevo
	if err := db.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo rotar el refresh token")
	}

	profile := findProfileForUser(db, user.ID)
	accessToken, err := IssueTokens(db, c, user, profile)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.JsonOK(c, "Token renovado", fiber.Map{
		"access_token": accessToken,
	})
}

func findProfileForUser(db *gorm.DB, userID uuid.UUID) *profileModel.ProfileModel {
	var profile profileModel.ProfileModel
	if err := db.Where("profile_user_id = ?", userID).First(&profile).Error; err != nil {
		return nil
	}
	return &profile
}
