// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"armonia_backend/internals/configs"
	"armonia_backend/internals/constants"
	authModel "armonia_backend/internals/features/users/auth/model"
	userModel "armonia_backend/internals/features/users/user/model"
	helper "armonia_backend/internals/helpers"
)

var validate = validator.New()

/* ========================== REGISTER ========================== */
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email"     validate:"required,email"`
		Password string `json:"password"  validate:"required,min=8"`
		Role     string `json:"role"      validate:"omitempty,oneof=director professor guardian student"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if input.Role == "" {
		input.Role = constants.RoleGuardian
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El email ya está registrado")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo encriptar la contraseña")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    email,
		Password: string(hashed),
		Role:     input.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.JsonCreated(c, "Usuario registrado correctamente", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ========================== LOGIN ========================== */
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"    validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	profile := findProfileForUser(db, user.ID)
	accessToken, err := IssueTokens(db, c, user, profile)
	if err != nil {
		log.Printf("[ERROR] login issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	data := fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	}
	if profile != nil {
		data["academy_id"] = profile.ProfileAcademyID
		data["profile_id"] = profile.ProfileID
	}
	return helper.JsonOK(c, "Login correcto", data)
}

/* ========================== LOGIN GOOGLE ========================== */
// POST /api/auth/login-google  body: {id_token}
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login con Google no configurado")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token de Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No se pudo decodificar el ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No existe una cuenta para ese email")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	// vincula el google_id la primera vez
	if user.GoogleID == nil && claimSet.Sub != "" {
		sub := claimSet.Sub
		if err := db.Model(&user).Update("google_id", sub).Error; err != nil {
			log.Printf("[WARN] no se pudo guardar google_id: %v", err)
		}
	}

	profile := findProfileForUser(db, user.ID)
	accessToken, err := IssueTokens(db, c, user, profile)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.JsonOK(c, "Login correcto", fiber.Map{
		"access_token": accessToken,
	})
}

/* ========================== LOGOUT ========================== */
// POST /api/auth/logout — blacklistea el access y revoca el refresh
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := strings.TrimSpace(c.Cookies("access_token"))
	if tokenString == "" {
		auth := strings.Fields(c.Get("Authorization"))
		if len(auth) == 2 && strings.EqualFold(auth[0], "Bearer") {
			tokenString = auth[1]
		}
	}

	if tokenString != "" {
		expiredAt := time.Now().Add(accessTTL())
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		row := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("[WARN] no se pudo blacklistear el token: %v", err)
		}
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if err := db.
			Where("token_hash = ?", computeRefreshHash(refreshCookie)).
			Delete(&authModel.RefreshToken{}).Error; err != nil {
			log.Printf("[WARN] no se pudo revocar el refresh token: %v", err)
		}
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.JsonOK(c, "Sesión cerrada", nil)
}
