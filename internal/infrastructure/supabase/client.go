// Package supabase implementa los puertos de OTP y almacenamiento contra la API REST
// de un backend Supabase (GoTrue para auth, Storage para archivos).
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/pkg/config"
)

// maxErrorBody límite de lectura del cuerpo de error.
const maxErrorBody = 64 * 1024

// Client cliente HTTP compartido por los adaptadores de auth y storage.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// NewClient construye el cliente. Si serviceKey está vacío se usa anonKey para storage.
func NewClient(cfg config.SupabaseConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient reemplaza el cliente HTTP (tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// errorBody formatos de error de GoTrue y Storage.
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e errorBody) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// do envía la petición y decodifica la respuesta 2xx en out (si no es nil).
// Cualquier otra respuesta se devuelve como ProviderError con el mensaje del proveedor tal cual.
func (c *Client) do(ctx context.Context, provider, method, path, bearer string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("supabase: crear HTTP request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &domain.ProviderError{Provider: provider, Err: ctx.Err()}
		}
		return &domain.ProviderError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("supabase: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		msg := ""
		if json.Unmarshal(raw, &eb) == nil {
			msg = eb.text()
		}
		if msg == "" {
			msg = fmt.Sprintf("%s HTTP %d", provider, resp.StatusCode)
		}
		return &domain.ProviderError{Provider: provider, Err: errors.New(msg)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("supabase: deserializar respuesta: %w", err)
		}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, provider, method, path, bearer string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("supabase: serializar request: %w", err)
	}
	return c.do(ctx, provider, method, path, bearer, bytes.NewReader(body), "application/json", out)
}
