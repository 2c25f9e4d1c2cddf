package ports

import "context"

// OTPProvider capacidad de autenticación por código enviado al teléfono.
// El protocolo OTP en sí vive en el proveedor (Supabase o el proveedor local).
type OTPProvider interface {
	RequestOTP(ctx context.Context, phone string) error
	// VerifyOTP devuelve el id estable del actor dueño del teléfono.
	VerifyOTP(ctx context.Context, phone, code string) (userID string, err error)
}

// MessageSender envía un mensaje de texto (WhatsApp) a un teléfono en formato E.164.
type MessageSender interface {
	SendText(ctx context.Context, phone, message string) error
}
