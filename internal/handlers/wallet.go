package handlers

import (
	"quicksend/internal/services/wallet"
	"quicksend/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet handles GET /api/wallets/:id.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return response.BadRequest(c, "invalid wallet id")
	}
	return response.Write(c, h.walletService.FindByID(c.UserContext(), id))
}
