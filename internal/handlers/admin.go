package handlers

import (
	"log"
	"strconv"

	apperrors "paygate/internal/errors"
	"paygate/internal/repositories"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type IntegrationLogHandler struct {
	logs repositories.IntegrationLogRepository
}

func NewIntegrationLogHandler(logs repositories.IntegrationLogRepository) *IntegrationLogHandler {
	return &IntegrationLogHandler{logs: logs}
}

// List pages through the integration log, newest first. Optional filters:
// merchant_id, service and success.
func (h *IntegrationLogHandler) List(c *fiber.Ctx) error {
	filter := repositories.IntegrationLogFilter{
		MerchantID:  c.Query("merchant_id"),
		ServiceName: c.Query("service"),
	}
	if raw := c.Query("success"); raw != "" {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.RespondError(c, apperrors.InvalidField("success"))
		}
		filter.Success = &success
	}

	p := utils.GetPagination(c, 1, 20)

	logs, total, err := h.logs.List(c.UserContext(), filter, p.Limit, p.Offset)
	if err != nil {
		log.Printf("Error fetching integration logs: %v", err)
		return utils.RespondError(c, apperrors.ErrInternal)
	}

	if claims, err := utils.GetAdminClaims(c); err == nil {
		log.Printf("Integration logs read by %s (merchant=%q service=%q page=%d)",
			claims.UserID, filter.MerchantID, filter.ServiceName, p.Page)
	}

	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(logs, p))
}
