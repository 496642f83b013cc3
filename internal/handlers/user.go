package handlers

import (
	"quicksend/internal/models"
	"quicksend/internal/services/user"
	"quicksend/internal/services/wallet"
	"quicksend/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService   user.Service
	walletService wallet.Service
}

func NewUserHandler(userSvc user.Service, walletSvc wallet.Service) *UserHandler {
	return &UserHandler{
		userService:   userSvc,
		walletService: walletSvc,
	}
}

// RegisterUser handles POST /api/users.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var input models.CreateUserInput
	if ok, err := bind(c, &input); !ok {
		return err
	}
	return response.Write(c, h.userService.Create(c.UserContext(), &input))
}

// UpdateUser handles PUT /api/users/:id.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "invalid user id")
	}

	var input models.UpdateUserInput
	if ok, err := bind(c, &input); !ok {
		return err
	}
	return response.Write(c, h.userService.Update(c.UserContext(), id, &input))
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "invalid user id")
	}
	return response.Write(c, h.userService.FindByID(c.UserContext(), id))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	return response.Write(c, h.userService.FindAll(c.UserContext()))
}

// GetUserWallet handles GET /api/users/:id/wallet.
func (h *UserHandler) GetUserWallet(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "invalid user id")
	}
	return response.Write(c, h.walletService.FindByUserID(c.UserContext(), id))
}
