package entity

import "time"

// User actor autenticado por OTP. Solo lo persiste el proveedor OTP local;
// con Supabase el ID lo emite el servicio de auth.
type User struct {
	ID        string
	Phone     string // E.164, ej. +919876543210
	CreatedAt time.Time
}
