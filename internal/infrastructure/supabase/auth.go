package supabase

import (
	"context"
	"errors"
	"net/http"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
)

// Verificar en tiempo de compilación que AuthProvider implementa OTPProvider.
var _ ports.OTPProvider = (*AuthProvider)(nil)

// AuthProvider OTP por SMS con GoTrue.
type AuthProvider struct {
	client *Client
}

// NewAuthProvider construye el adaptador.
func NewAuthProvider(client *Client) *AuthProvider {
	return &AuthProvider{client: client}
}

type otpRequest struct {
	Phone string `json:"phone"`
}

type verifyRequest struct {
	Type  string `json:"type"`
	Phone string `json:"phone"`
	Token string `json:"token"`
}

type verifyResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Phone string `json:"phone"`
	} `json:"user"`
}

// RequestOTP pide a GoTrue el envío del código al teléfono.
func (p *AuthProvider) RequestOTP(ctx context.Context, phone string) error {
	return p.client.doJSON(ctx, "auth", http.MethodPost, "/auth/v1/otp", p.client.anonKey, otpRequest{Phone: phone}, nil)
}

// VerifyOTP verifica el código y devuelve el id del usuario de GoTrue.
func (p *AuthProvider) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	var out verifyResponse
	err := p.client.doJSON(ctx, "auth", http.MethodPost, "/auth/v1/verify", p.client.anonKey,
		verifyRequest{Type: "sms", Phone: phone, Token: code}, &out)
	if err != nil {
		return "", err
	}
	if out.User.ID == "" {
		return "", &domain.ProviderError{Provider: "auth", Err: errors.New("verify response without user")}
	}
	return out.User.ID, nil
}
