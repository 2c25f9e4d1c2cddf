// Package auth contiene el inicio de sesión por OTP al teléfono y la emisión del token de sesión.
package auth

import (
	"context"
	"strings"
	"unicode"

	"github.com/jhoicas/homeexotica-crm/internal/application/dto"
	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/pkg/jwt"
)

// Mensajes de validación visibles en la pantalla de ingreso.
const (
	MsgInvalidPhone = "Please enter a valid phone number"
	MsgInvalidCode  = "Please enter the 6-digit OTP"
)

// MinPhoneLength largo mínimo del teléfono tal como lo escribe el usuario.
const MinPhoneLength = 10

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: pedir y verificar el OTP.
type AuthUseCase struct {
	otp         ports.OTPProvider
	jwtCfg      JWTConfig
	countryCode string
}

// NewAuthUseCase construye el caso de uso de auth. countryCode se antepone a números sin "+".
func NewAuthUseCase(otp ports.OTPProvider, jwtCfg JWTConfig, countryCode string) *AuthUseCase {
	if countryCode == "" {
		countryCode = "+91"
	}
	return &AuthUseCase{otp: otp, jwtCfg: jwtCfg, countryCode: countryCode}
}

// NormalizePhone valida el largo y antepone el código de país a números sin "+"
// (ej: "98765 43210" -> "+919876543210").
func NormalizePhone(phone, countryCode string) (string, error) {
	phone = strings.TrimSpace(phone)
	if len(phone) < MinPhoneLength {
		return "", domain.NewValidationError(MsgInvalidPhone)
	}
	if strings.HasPrefix(phone, "+") {
		return phone, nil
	}
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return "", domain.NewValidationError(MsgInvalidPhone)
	}
	return countryCode + digits, nil
}

// RequestOTP envía el código al teléfono y devuelve el número normalizado.
func (uc *AuthUseCase) RequestOTP(ctx context.Context, phone string) (string, error) {
	normalized, err := NormalizePhone(phone, uc.countryCode)
	if err != nil {
		return "", err
	}
	if err := uc.otp.RequestOTP(ctx, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// VerifyOTP verifica el código y emite el JWT de sesión del actor.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, phone, code string) (*dto.SessionResponse, error) {
	normalized, err := NormalizePhone(phone, uc.countryCode)
	if err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if len(code) < 6 {
		return nil, domain.NewValidationError(MsgInvalidCode)
	}
	userID, err := uc.otp.VerifyOTP(ctx, normalized, code)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, normalized, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:     token,
		UserID:    userID,
		Phone:     normalized,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

// Authenticate valida un token de sesión y devuelve el actor.
func (uc *AuthUseCase) Authenticate(token string) (userID string, err error) {
	userID, _, err = jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return "", domain.ErrUnauthenticated
	}
	return userID, nil
}
