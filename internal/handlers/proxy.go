package handlers

import (
	"paygate/internal/services/proxy"
	"paygate/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ProxyHandler relays merchant payment calls to one upstream processor.
type ProxyHandler struct {
	service proxy.Service
}

func NewProxyHandler(service proxy.Service) *ProxyHandler {
	return &ProxyHandler{service: service}
}

// Route is the path segment the handler is mounted on.
func (h *ProxyHandler) Route() string {
	return h.service.Provider().Route
}

// Handle relays the upstream status and JSON body verbatim.
func (h *ProxyHandler) Handle(c *fiber.Ctx) error {
	req, err := proxy.ParseRequest(c.Body())
	if err != nil {
		return utils.RespondError(c, err)
	}

	resp, err := h.service.Forward(c.UserContext(), req)
	if err != nil {
		return utils.RespondError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(resp.StatusCode).Send(resp.Body)
}
