package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileModel "armonia_backend/internals/features/people/profiles/model"
	"armonia_backend/internals/features/users/auth/service"
	userModel "armonia_backend/internals/features/users/user/model"
	helper "armonia_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	data := fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	}

	var profile profileModel.ProfileModel
	if err := ac.DB.Where("profile_user_id = ?", user.ID).First(&profile).Error; err == nil {
		data["academy_id"] = profile.ProfileAcademyID
		data["profile_id"] = profile.ProfileID
		data["full_name"] = profile.ProfileFullName
	}

	return helper.JsonOK(c, "OK", fiber.Map{"user": data})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}
