package usecase

import (
	"context"
	"time"

	"bands-console/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus-метрики кэша справочников.
var (
	catalogCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bands_catalog_cache_hits_total",
		Help: "Попадания в кэш справочников.",
	}, []string{"catalog"})
	catalogCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bands_catalog_cache_misses_total",
		Help: "Промахи кэша справочников.",
	}, []string{"catalog"})
)

const cacheKey = "all"

// CatalogUseCase отдаёт справочники.
// Инструменты и бейджи кэшируются с TTL; роли не кэшируются, их счётчики меняются.
type CatalogUseCase struct {
	api         domain.AdminAPI
	instruments *expirable.LRU[string, []domain.InstrumentDefinition]
	badges      *expirable.LRU[string, []domain.BadgeDefinition]
}

// NewCatalogUseCase создает новый экземпляр CatalogUseCase.
func NewCatalogUseCase(api domain.AdminAPI, size int, ttl time.Duration) domain.CatalogUseCase {
	if size <= 0 {
		size = 1
	}
	return &CatalogUseCase{
		api:         api,
		instruments: expirable.NewLRU[string, []domain.InstrumentDefinition](size, nil, ttl),
		badges:      expirable.NewLRU[string, []domain.BadgeDefinition](size, nil, ttl),
	}
}

// Roles всегда запрашивает роли у API.
func (uc *CatalogUseCase) Roles(ctx context.Context) ([]domain.RoleSnapshot, error) {
	return uc.api.ListRoles(ctx)
}

// Instruments возвращает справочник инструментов.
func (uc *CatalogUseCase) Instruments(ctx context.Context) ([]domain.InstrumentDefinition, error) {
	if v, ok := uc.instruments.Get(cacheKey); ok {
		catalogCacheHits.WithLabelValues("instruments").Inc()
		return v, nil
	}
	catalogCacheMisses.WithLabelValues("instruments").Inc()

	v, err := uc.api.ListInstruments(ctx)
	if err != nil {
		return nil, err
	}
	uc.instruments.Add(cacheKey, v)
	return v, nil
}

// Badges возвращает справочник системных бейджей.
func (uc *CatalogUseCase) Badges(ctx context.Context) ([]domain.BadgeDefinition, error) {
	if v, ok := uc.badges.Get(cacheKey); ok {
		catalogCacheHits.WithLabelValues("badges").Inc()
		return v, nil
	}
	catalogCacheMisses.WithLabelValues("badges").Inc()

	v, err := uc.api.ListBadges(ctx)
	if err != nil {
		return nil, err
	}
	uc.badges.Add(cacheKey, v)
	return v, nil
}

// loadCatalog собирает справочники, нужные редьюсеру.
func loadCatalog(ctx context.Context, catalog domain.CatalogUseCase) (domain.Catalog, error) {
	roles, err := catalog.Roles(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	badges, err := catalog.Badges(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	return domain.Catalog{Roles: roles, Badges: badges}, nil
}
