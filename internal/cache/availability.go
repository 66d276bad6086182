// Package cache guarda no Redis o resultado do cálculo de
// disponibilidade, que é a consulta mais quente da API. A chave carrega
// barbeiro, data e serviço; qualquer mutação que afete o dia derruba
// todas as chaves do par barbeiro+data.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const availabilityTTL = 60 * time.Second

type AvailabilityCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// New devolve um cache ligado ao client. Com client nil o cache vira
// no-op e a API segue funcionando sem Redis.
func New(client *redis.Client, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{client: client, log: log}
}

func key(barberID uint, date string, servicePublicID string) string {
	if servicePublicID == "" {
		servicePublicID = "default"
	}
	return fmt.Sprintf("availability:%d:%s:%s", barberID, date, servicePublicID)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID uint,
	date string,
	servicePublicID string,
) ([]string, bool) {

	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(barberID, date, servicePublicID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("falha ao ler cache de disponibilidade")
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID uint,
	date string,
	servicePublicID string,
	slots []string,
) {

	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(barberID, date, servicePublicID), raw, availabilityTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("falha ao gravar cache de disponibilidade")
	}
}

// InvalidateDay apaga todas as variações de serviço do par barbeiro+data.
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	barberID uint,
	date string,
) {

	if c == nil || c.client == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:%s:*", barberID, date)
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		c.log.Warn().Err(err).Msg("falha ao listar chaves de disponibilidade")
		return
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			c.log.Warn().Err(err).Msg("falha ao invalidar cache de disponibilidade")
		}
	}
}
