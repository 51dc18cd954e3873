package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/Rubennaldos/pecaditos-web-sub000/internal/application/catalog"
	"github.com/Rubennaldos/pecaditos-web-sub000/internal/domain/entity"
	"github.com/Rubennaldos/pecaditos-web-sub000/pkg/config"
	"github.com/Rubennaldos/pecaditos-web-sub000/pkg/logger"
)

var _ catalog.Cache = (*CatalogCache)(nil)

// NewClient crea el cliente Redis a partir de la configuración y valida
// la conexión con un Ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// CatalogCache caché de catálogo en Redis con TTL. Los errores de Redis
// se loguean y se tratan como miss: el catálogo siempre puede servirse
// desde la DB.
type CatalogCache struct {
	client *goredis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCatalogCache construye el caché con el TTL configurado.
func NewCatalogCache(client *goredis.Client, ttlMinutos int, log *logger.Logger) *CatalogCache {
	return &CatalogCache{
		client: client,
		ttl:    time.Duration(ttlMinutos) * time.Minute,
		log:    log,
	}
}

// Get devuelve los productos cacheados bajo key, o ok=false en miss.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]entity.Product, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("error leyendo caché de catálogo")
		}
		return nil, false
	}

	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("payload corrupto en caché, descartando")
		c.client.Del(ctx, key)
		return nil, false
	}
	return products, true
}

// Set guarda los productos bajo key con el TTL configurado.
func (c *CatalogCache) Set(ctx context.Context, key string, products []entity.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("error serializando catálogo para caché")
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("error escribiendo caché de catálogo")
	}
}

// Invalidate borra las claves indicadas.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("error invalidando caché de catálogo")
	}
}
