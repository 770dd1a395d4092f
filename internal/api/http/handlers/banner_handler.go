package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Avangel08/furniro-sub001/internal/service"
	apperrors "github.com/Avangel08/furniro-sub001/pkg/util/errorutil"
)

// BannerHandler exposes banner scheduling to back-office staff.
type BannerHandler struct {
	scheduler *service.BannerScheduler
}

// NewBannerHandler constructs handler.
func NewBannerHandler(scheduler *service.BannerScheduler) *BannerHandler {
	return &BannerHandler{scheduler: scheduler}
}

// RunSchedule handles POST /api/banners/schedule/run.
func (h *BannerHandler) RunSchedule(c *fiber.Ctx) error {
	result, err := h.scheduler.Run(c.UserContext())
	if err != nil && result.Checked == 0 {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"success": err == nil, "data": result})
}
