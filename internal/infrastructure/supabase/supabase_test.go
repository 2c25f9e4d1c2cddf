package supabase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/domain"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/supabase"
	"github.com/jhoicas/homeexotica-crm/pkg/config"
)

func newServer(t *testing.T, h http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return supabase.NewClient(config.SupabaseConfig{URL: srv.URL + "/", AnonKey: "anon", ServiceKey: "service"})
}

func TestAuth_VerifyOTP_DevuelveUserID(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/verify", r.URL.Path)
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sms", body["type"])
		assert.Equal(t, "+919876543210", body["phone"])
		assert.Equal(t, "123456", body["token"])
		_, _ = io.WriteString(w, `{"access_token":"x","user":{"id":"u-1","phone":"919876543210"}}`)
	})

	id, err := supabase.NewAuthProvider(client).VerifyOTP(context.Background(), "+919876543210", "123456")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestAuth_ErrorDelProveedorTalCual(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"code":403,"msg":"Token has expired or is invalid"}`)
	})

	_, err := supabase.NewAuthProvider(client).VerifyOTP(context.Background(), "+919876543210", "000000")
	require.Error(t, err)
	var pe *domain.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "auth", pe.Provider)
	assert.Equal(t, "Token has expired or is invalid", err.Error())
}

func TestStorage_PutYRemove(t *testing.T) {
	var calls []string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "Bearer service", r.Header.Get("Authorization"))
		if r.Method == http.MethodDelete {
			var body map[string][]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []string{"u1/1760000000000.pdf"}, body["prefixes"])
			_, _ = io.WriteString(w, `[]`)
			return
		}
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{"Key":"documents/u1/1760000000000.pdf"}`)
	})
	st := supabase.NewStorage(client, "documents")

	url, err := st.PutObject(context.Background(), "u1/1760000000000.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Contains(t, url, "/storage/v1/object/public/documents/u1/1760000000000.pdf")
	require.NoError(t, st.RemoveObject(context.Background(), "u1/1760000000000.pdf"))

	assert.Equal(t, []string{
		"POST /storage/v1/object/documents/u1/1760000000000.pdf",
		"DELETE /storage/v1/object/documents",
	}, calls)
}

func TestStorage_Duplicado(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`)
	})
	_, err := supabase.NewStorage(client, "documents").PutObject(context.Background(), "a/b.pdf", []byte("x"), "")
	require.Error(t, err)
	assert.Equal(t, "The resource already exists", err.Error())
}
