package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
)

// FollowUpHandler maneja las peticiones HTTP de seguimientos (protegido).
type FollowUpHandler struct {
	uc *crm.FollowUpUseCase
}

// NewFollowUpHandler construye el handler.
func NewFollowUpHandler(uc *crm.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{uc: uc}
}

// List godoc
// @Summary      Listar seguimientos por pestaña
// @Tags         follow-ups
// @Produce      json
// @Param        tab  query  string  false  "today | upcoming | missed | completed | all (vacío = all)"
// @Success      200  {array}   dto.FollowUpResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/follow-ups [get]
func (h *FollowUpHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("tab"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/follow-ups
func (h *FollowUpHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFollowUpRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	fu, err := h.uc.Add(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fu)
}

// Update PATCH /api/follow-ups/:id
func (h *FollowUpHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateFollowUpRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	fu, err := h.uc.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fu)
}

// Complete PATCH /api/follow-ups/:id/complete
func (h *FollowUpHandler) Complete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CompleteFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	fu, err := h.uc.ToggleComplete(c.UserContext(), GetUserID(c), id, in.Completed)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fu)
}
