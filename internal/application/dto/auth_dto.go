package dto

// RequestOTPRequest body para POST /api/auth/otp.
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10"`
}

// VerifyOTPRequest body para POST /api/auth/verify.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10"`
	Code  string `json:"code" validate:"required,numeric,min=4,max=8"`
}

// SessionResponse token emitido tras verificar el OTP.
type SessionResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Phone     string `json:"phone"`
	ExpiresIn int    `json:"expires_in"` // segundos
}

// OTPSentResponse respuesta de POST /api/auth/otp; Phone es el número normalizado a usar en /verify.
type OTPSentResponse struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
