// Package otp implementa un proveedor OTP propio: código de 6 dígitos enviado por
// WhatsApp, guardado con bcrypt y de un solo uso.
package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/domain/repository"
)

var _ ports.OTPProvider = (*Provider)(nil)

const (
	// CodeLength dígitos del código.
	CodeLength = 6
	// MaxAttempts intentos fallidos tras los cuales el código se descarta.
	MaxAttempts = 5
)

// Provider OTP local.
type Provider struct {
	store  CodeStore
	sender ports.MessageSender
	users  repository.UserRepository
	ttl    time.Duration
	log    zerolog.Logger
	gen    func() (string, error)
}

// NewProvider construye el proveedor.
func NewProvider(store CodeStore, sender ports.MessageSender, users repository.UserRepository, ttl time.Duration, log zerolog.Logger) *Provider {
	return &Provider{store: store, sender: sender, users: users, ttl: ttl, log: log, gen: generateCode}
}

// WithGenerator reemplaza el generador de códigos (tests).
func (p *Provider) WithGenerator(gen func() (string, error)) *Provider {
	p.gen = gen
	return p
}

// RequestOTP genera un código nuevo (reemplaza el anterior) y lo envía por WhatsApp.
func (p *Provider) RequestOTP(ctx context.Context, phone string) error {
	code, err := p.gen()
	if err != nil {
		return fmt.Errorf("otp: generar código: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("otp: hash: %w", err)
	}
	if err := p.store.Save(ctx, phone, string(hash), p.ttl); err != nil {
		return err
	}
	if err := p.sender.SendText(ctx, phone, fmt.Sprintf("Your OTP code is: %s", code)); err != nil {
		_ = p.store.Delete(ctx, phone)
		return err
	}
	p.log.Info().Str("phone", mask(phone)).Msg("OTP enviado")
	return nil
}

// VerifyOTP compara el código, lo consume y devuelve el id del usuario (creado si no existe).
// Tras MaxAttempts fallos el código se descarta y hay que pedir otro.
func (p *Provider) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	hash, err := p.store.Get(ctx, phone)
	if errors.Is(err, errNoCode) {
		return "", domain.ErrInvalidOTP
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		p.fail(ctx, phone)
		return "", domain.ErrInvalidOTP
	}

	// Take decide quién gana entre verificaciones concurrentes del mismo código.
	taken, err := p.store.Take(ctx, phone)
	if errors.Is(err, errNoCode) || (err == nil && taken != hash) {
		return "", domain.ErrInvalidOTP
	}
	if err != nil {
		return "", err
	}
	user, err := p.users.UpsertByPhone(ctx, phone)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (p *Provider) fail(ctx context.Context, phone string) {
	n, err := p.store.Fail(ctx, phone)
	if err != nil {
		if !errors.Is(err, errNoCode) {
			p.log.Warn().Err(err).Str("phone", mask(phone)).Msg("no se pudo contar el intento fallido")
		}
		return
	}
	if n < MaxAttempts {
		return
	}
	if err := p.store.Delete(ctx, phone); err != nil {
		p.log.Warn().Err(err).Str("phone", mask(phone)).Msg("no se pudo descartar el OTP")
		return
	}
	p.log.Warn().Str("phone", mask(phone)).Int("attempts", n).Msg("OTP descartado por intentos fallidos")
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", CodeLength, n.Int64()), nil
}

// mask deja visibles solo los últimos 4 dígitos.
func mask(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
