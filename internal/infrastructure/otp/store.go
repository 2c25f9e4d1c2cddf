package otp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// errNoCode no hay código vigente para el teléfono.
var errNoCode = errors.New("otp: sin código vigente")

// CodeStore guarda el hash del código por teléfono con expiración y cuenta los intentos fallidos.
type CodeStore interface {
	// Save reemplaza el código del teléfono y reinicia los intentos.
	Save(ctx context.Context, phone, hash string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (string, error)
	// Take devuelve el hash y borra el código en una sola operación; de dos llamadas
	// concurrentes solo una lo obtiene.
	Take(ctx context.Context, phone string) (string, error)
	// Fail suma un intento fallido y devuelve el total.
	Fail(ctx context.Context, phone string) (int, error)
	Delete(ctx context.Context, phone string) error
}

// ── Redis ─────────────────────────────────────────────────────────────────────

const (
	redisKeyPrefix = "crm:otp:"
	fieldHash      = "hash"
	fieldFails     = "fails"
	// txRetries reintentos de una transacción WATCH que perdió la carrera.
	txRetries = 3
)

// RedisStore códigos en Redis (compartidos entre réplicas).
// Cada teléfono es un hash {hash, fails} con el TTL del código.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore construye el store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, phone, hash string, ttl time.Duration) error {
	key := redisKeyPrefix + phone
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fieldHash, hash, fieldFails, 0)
	pipe.PExpire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("otp: guardar código: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, phone string) (string, error) {
	hash, err := s.client.HGet(ctx, redisKeyPrefix+phone, fieldHash).Result()
	if errors.Is(err, redis.Nil) {
		return "", errNoCode
	}
	if err != nil {
		return "", fmt.Errorf("otp: leer código: %w", err)
	}
	return hash, nil
}

func (s *RedisStore) Take(ctx context.Context, phone string) (string, error) {
	key := redisKeyPrefix + phone
	var hash string
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		h, err := tx.HGet(ctx, key, fieldHash).Result()
		if errors.Is(err, redis.Nil) {
			return errNoCode
		}
		if err != nil {
			return err
		}
		if _, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		}); err != nil {
			return err
		}
		hash = h
		return nil
	}, key)
	switch {
	case errors.Is(err, errNoCode), errors.Is(err, redis.TxFailedErr):
		// Otro verificador lo consumió primero (o se pidió un código nuevo).
		return "", errNoCode
	case err != nil:
		return "", fmt.Errorf("otp: consumir código: %w", err)
	}
	return hash, nil
}

func (s *RedisStore) Fail(ctx context.Context, phone string) (int, error) {
	key := redisKeyPrefix + phone
	for i := 0; i < txRetries; i++ {
		var incr *redis.IntCmd
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			n, err := tx.Exists(ctx, key).Result()
			if err != nil {
				return err
			}
			if n == 0 {
				return errNoCode
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				incr = pipe.HIncrBy(ctx, key, fieldFails, 1)
				return nil
			})
			return err
		}, key)
		switch {
		case err == nil:
			return int(incr.Val()), nil
		case errors.Is(err, errNoCode):
			return 0, errNoCode
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return 0, fmt.Errorf("otp: contar intento: %w", err)
		}
	}
	return 0, fmt.Errorf("otp: contar intento: %w", redis.TxFailedErr)
}

func (s *RedisStore) Delete(ctx context.Context, phone string) error {
	return s.client.Del(ctx, redisKeyPrefix+phone).Err()
}

// ── Memoria ───────────────────────────────────────────────────────────────────

type memoryEntry struct {
	hash    string
	fails   int
	expires time.Time
}

// MemoryStore códigos en memoria del proceso.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryStore construye el store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]*memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, phone, hash string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = &memoryEntry{hash: hash, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.live(phone)
	if err != nil {
		return "", err
	}
	return e.hash, nil
}

func (s *MemoryStore) Take(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.live(phone)
	if err != nil {
		return "", err
	}
	delete(s.entries, phone)
	return e.hash, nil
}

func (s *MemoryStore) Fail(_ context.Context, phone string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.live(phone)
	if err != nil {
		return 0, err
	}
	e.fails++
	return e.fails, nil
}

func (s *MemoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, phone)
	return nil
}

// live devuelve la entrada vigente; las vencidas se borran. Llamar con mu tomado.
func (s *MemoryStore) live(phone string) (*memoryEntry, error) {
	e, ok := s.entries[phone]
	if !ok {
		return nil, errNoCode
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, phone)
		return nil, errNoCode
	}
	return e, nil
}
