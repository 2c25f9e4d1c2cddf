package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
	"github.com/jhoicas/homeexotica-crm/internal/infrastructure/cache"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedis(client, ttl, zerolog.Nop()), mr
}

func TestRedis_GetOrFetch_GuardaYReutiliza(t *testing.T) {
	c, mr := newTestRedis(t, time.Minute)
	ctx := context.Background()
	calls := 0
	fetch := func(context.Context) (any, error) {
		calls++
		return []item{{Name: "Asha"}}, nil
	}

	var first, second []item
	require.NoError(t, c.GetOrFetch(ctx, "leads:u1", &first, fetch))
	require.NoError(t, c.GetOrFetch(ctx, "leads:u1", &second, fetch))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Asha", second[0].Name)
	assert.True(t, mr.Exists("crm:leads:u1"))
	assert.Equal(t, time.Minute, mr.TTL("crm:leads:u1"))

	members, err := mr.Members("crm:idx:leads:u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crm:leads:u1"}, members)
}

func TestRedis_ErrorDeFetch_NoSeCachea(t *testing.T) {
	c, mr := newTestRedis(t, time.Minute)
	boom := errors.New("provider down")

	var out []item
	err := c.GetOrFetch(context.Background(), "leads:u1", &out, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("crm:leads:u1"))
}

func TestRedis_Invalidate_BorraVariantesDelActor(t *testing.T) {
	c, mr := newTestRedis(t, time.Minute)
	ctx := context.Background()
	put := func(key string) {
		var out string
		require.NoError(t, c.GetOrFetch(ctx, key, &out, func(context.Context) (any, error) { return key, nil }))
	}
	put(ports.Key(ports.KeyFollowUps, "u1"))
	put(ports.Key(ports.KeyFollowUps, "u1", "customer", "c1"))
	put(ports.Key(ports.KeyFollowUps, "u2"))
	put(ports.Key(ports.KeyLeads, "u1"))

	require.NoError(t, c.Invalidate(ctx, ports.Key(ports.KeyFollowUps, "u1")))

	assert.False(t, mr.Exists("crm:follow_ups:u1"))
	assert.False(t, mr.Exists("crm:follow_ups:u1:customer:c1"))
	assert.True(t, mr.Exists("crm:follow_ups:u2"))
	assert.True(t, mr.Exists("crm:leads:u1"))
}

func TestRedis_Invalidate_ReleeDatosFrescos(t *testing.T) {
	c, _ := newTestRedis(t, time.Minute)
	ctx := context.Background()
	value := "old"
	fetch := func(context.Context) (any, error) { return value, nil }

	var out string
	require.NoError(t, c.GetOrFetch(ctx, "leads:u1", &out, fetch))
	value = "new"
	require.NoError(t, c.Invalidate(ctx, "leads:u1"))
	require.NoError(t, c.GetOrFetch(ctx, "leads:u1", &out, fetch))
	assert.Equal(t, "new", out)
}

// Un fetch que empieza antes de la escritura no deja su resultado en el cache.
func TestRedis_FetchIniciadoAntesDeInvalidar_NoSeGuarda(t *testing.T) {
	c, mr := newTestRedis(t, time.Minute)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		var out []string
		_ = c.GetOrFetch(ctx, "leads:u1", &out, func(context.Context) (any, error) {
			close(started)
			<-release
			return []string{"old"}, nil
		})
	}()
	<-started

	require.NoError(t, c.Invalidate(ctx, "leads:u1"))
	close(release)
	<-done
	assert.False(t, mr.Exists("crm:leads:u1"))

	var fresh []string
	require.NoError(t, c.GetOrFetch(ctx, "leads:u1", &fresh, func(context.Context) (any, error) {
		return []string{"new"}, nil
	}))
	assert.Equal(t, []string{"new"}, fresh)
}

func TestRedis_SinServidor_SirveDelProveedor(t *testing.T) {
	c, mr := newTestRedis(t, time.Minute)
	mr.Close()

	var out string
	err := c.GetOrFetch(context.Background(), "leads:u1", &out, func(context.Context) (any, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", out)
}
