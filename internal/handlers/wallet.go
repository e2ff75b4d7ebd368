package handlers

import (
	apperrors "paygate/internal/errors"
	"paygate/internal/services/walletconn"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletConnectionHandler struct {
	walletService walletconn.Service
}

func NewWalletConnectionHandler(walletService walletconn.Service) *WalletConnectionHandler {
	return &WalletConnectionHandler{
		walletService: walletService,
	}
}

// Handle dispatches on the body's action field: register or validate.
func (h *WalletConnectionHandler) Handle(c *fiber.Ctx) error {
	decoded, err := walletconn.DecodeRequest(c.Body())
	if err != nil {
		return utils.RespondError(c, err)
	}

	switch req := decoded.(type) {
	case *walletconn.RegisterRequest:
		wallet, err := h.walletService.Register(c.UserContext(), req)
		if err != nil {
			return utils.RespondError(c, err)
		}
		return utils.Success(c, fiber.Map{
			"success": true,
			"wallet":  wallet,
		})
	case *walletconn.ValidateRequest:
		result, err := h.walletService.Validate(c.UserContext(), req)
		if err != nil {
			return utils.RespondError(c, err)
		}
		return utils.Success(c, result)
	}
	return utils.RespondError(c, apperrors.ErrInvalidAction)
}
