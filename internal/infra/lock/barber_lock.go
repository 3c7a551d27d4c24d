package lock

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/diegodonald/saas-barber-sub001/internal/domain/appointment"
)

const (
	barberLockTTL   = 10 * time.Second
	barberLockRetry = 50 * time.Millisecond
)

// BarberLocker serializa gravações de agenda por barbeiro via Redis
// (SETNX com TTL). Barbeiros diferentes nunca disputam o mesmo lock.
type BarberLocker struct {
	client *redis.Client
}

func NewBarberLocker(client *redis.Client) *BarberLocker {
	return &BarberLocker{client: client}
}

func barberKey(barberID uint) string {
	return fmt.Sprintf("booking_lock:barber:%d", barberID)
}

func (l *BarberLocker) AcquireBarber(
	ctx context.Context,
	barberID uint,
) (func(), error) {

	key := barberKey(barberID)
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, barberLockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(barberLockRetry):
		}
	}

	release := func() {
		// só libera se o token ainda for nosso (TTL pode ter expirado)
		current, err := l.client.Get(context.Background(), key).Result()
		if err == nil && current == token {
			if err := l.client.Del(context.Background(), key).Err(); err != nil {
				log.Println("barber lock release error:", err)
			}
		}
	}

	return release, nil
}

var _ domain.Locker = (*BarberLocker)(nil)

// NopLocker é usado quando o Redis está desabilitado (testes, dev local).
type NopLocker struct{}

func (NopLocker) AcquireBarber(ctx context.Context, barberID uint) (func(), error) {
	return func() {}, nil
}

var _ domain.Locker = NopLocker{}
