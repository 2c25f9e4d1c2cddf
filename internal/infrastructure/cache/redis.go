package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/homeexotica-crm/internal/application/ports"
)

var _ ports.QueryCache = (*Redis)(nil)

const (
	keyPrefix = "crm:"
	// genTTL vida del contador de generación de cada raíz.
	genTTL = 24 * time.Hour
)

// errStale el fetch empezó antes de una invalidación: su resultado no se guarda.
var errStale = errors.New("cache: resultado anterior a una invalidación")

// Redis cache de consultas compartido entre réplicas.
// Por cada "<root>:<actor>" se mantiene un set índice con todas las variantes guardadas,
// así Invalidate borra el listado completo sin usar KEYS/SCAN. Un contador de generación
// por raíz sube en cada Invalidate; un fetch solo se guarda si la generación no cambió
// (WATCH sobre el contador).
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	log    zerolog.Logger
}

// NewRedis usa el cliente dado; ttl 0 = sin expiración.
func NewRedis(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Redis {
	return &Redis{client: client, ttl: ttl, log: log}
}

// GetOrFetch lee de Redis; en un miss llama a fetch y guarda el resultado.
// Si Redis no responde se sirve directo del proveedor sin guardar nada.
func (c *Redis) GetOrFetch(ctx context.Context, key string, dest any, fetch ports.FetchFunc) error {
	str, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err == nil {
		return json.Unmarshal([]byte(str), dest)
	}
	if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("key", key).Msg("redis get falló, se consulta el proveedor")
	}

	gen, err := c.generation(ctx, key)
	cacheable := err == nil
	if !cacheable {
		c.log.Warn().Err(err).Str("key", key).Msg("redis sin generación, no se guarda el resultado")
	}

	// Las lecturas posteriores a una invalidación no se suman a un fetch anterior.
	v, err, _ := c.group.Do(key+"@"+gen, func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("cache: encode %s: %w", key, err)
		}
		if cacheable {
			if err := c.store(context.Background(), key, gen, raw); err != nil {
				c.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en redis")
			}
		}
		return raw, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(v.([]byte), dest)
}

// generation valor actual del contador de la raíz de key ("0" si nunca se invalidó).
func (c *Redis) generation(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, genKey(ports.RootKey(key))).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

// store guarda raw solo si la generación sigue siendo gen.
func (c *Redis) store(ctx context.Context, key, gen string, raw []byte) error {
	root := ports.RootKey(key)
	gk, index := genKey(root), indexKey(root)
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, gk).Result()
		switch {
		case errors.Is(err, redis.Nil):
			cur = "0"
		case err != nil:
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, keyPrefix+key, raw, c.ttl)
			pipe.SAdd(ctx, index, keyPrefix+key)
			if c.ttl > 0 {
				// El índice vive al menos lo que sus claves.
				pipe.Expire(ctx, index, 2*c.ttl)
			}
			return nil
		})
		return err
	}, gk)
	if errors.Is(err, errStale) || errors.Is(err, redis.TxFailedErr) {
		c.log.Debug().Str("key", key).Msg("resultado descartado por invalidación concurrente")
		return nil
	}
	return err
}

// Invalidate sube la generación de la raíz y luego borra la clave y las variantes
// registradas en su índice. El orden importa: todo lo guardado antes del INCR ya está
// en el índice, y nada iniciado antes del INCR puede guardarse después.
func (c *Redis) Invalidate(ctx context.Context, key string) error {
	root := ports.RootKey(key)
	gk, index := genKey(root), indexKey(root)

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, gk)
	pipe.Expire(ctx, gk, genTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache: generación %s: %w", key, err)
	}

	members, err := c.client.SMembers(ctx, index).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cache: índice %s: %w", key, err)
	}
	del := []string{keyPrefix + key}
	for _, m := range members {
		if m != keyPrefix+key && ports.CoversKey(keyPrefix+key, m) {
			del = append(del, m)
		}
	}
	pipe = c.client.TxPipeline()
	pipe.Del(ctx, del...)
	pipe.SRem(ctx, index, toAny(del)...)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache: invalidate %s: %w", key, err)
	}
	return nil
}

func indexKey(root string) string {
	return keyPrefix + "idx:" + root
}

func genKey(root string) string {
	return keyPrefix + "gen:" + root
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
