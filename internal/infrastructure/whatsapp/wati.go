// Package whatsapp envía mensajes de sesión por WhatsApp a través de la API de Wati.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/pkg/config"
)

var _ ports.MessageSender = (*Wati)(nil)

// Wati cliente del endpoint sendSessionMessage.
type Wati struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWati construye el cliente.
func NewWati(cfg config.WatiConfig) *Wati {
	return &Wati{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type watiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendText envía message al teléfono (se quita el "+" inicial, Wati espera solo dígitos).
func (w *Wati) SendText(ctx context.Context, phone, message string) error {
	if w.baseURL == "" || w.apiKey == "" {
		return &domain.ProviderError{Provider: "whatsapp", Err: fmt.Errorf("WATI_URL o WATI_API_KEY no configurados")}
	}
	body, err := json.Marshal(watiMessage{Phone: strings.TrimPrefix(phone, "+"), Message: message})
	if err != nil {
		return fmt.Errorf("whatsapp: serializar mensaje: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/api/v1/sendSessionMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("whatsapp: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.apiKey)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return &domain.ProviderError{Provider: "whatsapp", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode != http.StatusOK {
		return &domain.ProviderError{Provider: "whatsapp", Err: fmt.Errorf("Wati HTTP %d", resp.StatusCode)}
	}
	return nil
}
