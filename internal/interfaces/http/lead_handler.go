package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/crm"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
)

// LeadHandler maneja las peticiones HTTP de leads (protegido).
type LeadHandler struct {
	uc *crm.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *crm.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// List godoc
// @Summary      Listar leads
// @Tags         leads
// @Produce      json
// @Param        status  query  string  false  "estado o all"
// @Success      200  {array}   dto.LeadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetUserID(c), c.Query("status", crm.StatusAll))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "lead"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	lead, err := h.uc.Add(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

// Update PATCH /api/leads/:id
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLeadRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	lead, err := h.uc.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}

// UpdateStatus PATCH /api/leads/:id/status
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateLeadStatusRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	lead, err := h.uc.UpdateStatus(c.UserContext(), GetUserID(c), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lead)
}
