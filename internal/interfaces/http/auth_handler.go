package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/homeexotica-crm/internal/application/auth"
	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
)

// AuthHandler login por OTP.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RequestOTP godoc
// @Summary      Enviar código OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestOTPRequest  true  "phone"
// @Success      200   {object}  dto.OTPSentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/otp [post]
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var in dto.RequestOTPRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	phone, err := h.uc.RequestOTP(c.UserContext(), in.Phone)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OTPSentResponse{Phone: phone, Message: "OTP sent to your phone!"})
}

// VerifyOTP godoc
// @Summary      Verificar código OTP e iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOTPRequest  true  "phone, code"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.VerifyOTPRequest
	if err := bindJSON(c, &in); err != nil {
		return bindError(c, err)
	}
	session, err := h.uc.VerifyOTP(c.UserContext(), in.Phone, in.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}
