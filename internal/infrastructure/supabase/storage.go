package supabase

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
)

var _ ports.ObjectStorage = (*Storage)(nil)

// Storage bucket público de Supabase Storage.
type Storage struct {
	client *Client
	bucket string
}

// NewStorage construye el adaptador para bucket (ej: "documents").
func NewStorage(client *Client, bucket string) *Storage {
	return &Storage{client: client, bucket: bucket}
}

func (s *Storage) key() string {
	if s.client.serviceKey != "" {
		return s.client.serviceKey
	}
	return s.client.anonKey
}

// PutObject sube el objeto sin sobrescribir y devuelve su URL pública.
func (s *Storage) PutObject(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	err := s.client.do(ctx, "storage", http.MethodPost, "/storage/v1/object/"+s.bucket+"/"+escapePath(path),
		s.key(), bytes.NewReader(data), contentType, nil)
	if err != nil {
		return "", err
	}
	return s.PublicURL(path), nil
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// RemoveObject borra el objeto del bucket.
func (s *Storage) RemoveObject(ctx context.Context, path string) error {
	return s.client.doJSON(ctx, "storage", http.MethodDelete, "/storage/v1/object/"+s.bucket, s.key(),
		removeRequest{Prefixes: []string{path}}, nil)
}

// PublicURL URL pública del objeto.
func (s *Storage) PublicURL(path string) string {
	return s.client.baseURL + "/storage/v1/object/public/" + s.bucket + "/" + escapePath(path)
}

func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
