package catalog

import (
	"context"
	"log/slog"
	"smm-order-desk/internal/api"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

// Repository is the session-scoped catalog cache. An empty cache means
// "not loaded yet", never "no services exist"; callers must check Ready.
type Repository interface {
	Load(ctx context.Context, token string) error
	Ready() bool
	Categories() []Category
	ServicesFor(categoryID int64) []Service
	ServiceByID(id int64) (*Service, bool)
}

type DefaultRepository struct {
	client api.Client
	group  singleflight.Group
	ready  *atomic.Bool

	mu         sync.RWMutex
	categories []Category
	services   []Service
	byID       map[int64]Service
}

func NewDefaultRepository(client api.Client) *DefaultRepository {
	return &DefaultRepository{
		client: client,
		ready:  atomic.NewBool(false),
		byID:   make(map[int64]Service),
	}
}

// Load fetches the catalog once; concurrent triggers share a single
// in-flight fetch. A failed load leaves the cache empty and retryable.
func (d *DefaultRepository) Load(ctx context.Context, token string) error {
	if d.ready.Load() {
		return nil
	}

	_, err, _ := d.group.Do("catalog", func() (any, error) {
		rawCategories, err := d.client.GetCategories(ctx, token)
		if err != nil {
			slog.Error("Failed to load categories", "error", err)
			return nil, err
		}
		rawServices, err := d.client.GetServices(ctx, token)
		if err != nil {
			slog.Error("Failed to load services", "error", err)
			return nil, err
		}

		categories, services, byID := buildCache(rawCategories, rawServices)

		d.mu.Lock()
		d.categories = categories
		d.services = services
		d.byID = byID
		d.mu.Unlock()
		d.ready.Store(true)

		slog.Info("Catalog loaded", "categories", len(categories), "services", len(services))
		return nil, nil
	})
	return err
}

func (d *DefaultRepository) Ready() bool {
	return d.ready.Load()
}

func (d *DefaultRepository) Categories() []Category {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Category, len(d.categories))
	copy(out, d.categories)
	return out
}

func (d *DefaultRepository) ServicesFor(categoryID int64) []Service {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []Service
	for _, svc := range d.services {
		if svc.CategoryID == categoryID {
			out = append(out, svc)
		}
	}
	return out
}

func (d *DefaultRepository) ServiceByID(id int64) (*Service, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	svc, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return &svc, true
}

func buildCache(rawCategories []api.Category, rawServices []api.Service) ([]Category, []Service, map[int64]Service) {
	seenCategories := make(map[int64]bool)
	var categories []Category
	for _, c := range rawCategories {
		if !c.IsActive || seenCategories[c.ID] {
			continue
		}
		seenCategories[c.ID] = true
		categories = append(categories, Category{
			ID:       c.ID,
			Name:     c.Name,
			IconHint: iconHintFor(c.Name),
		})
	}

	byID := make(map[int64]Service)
	var services []Service
	for _, s := range rawServices {
		if !s.IsActive || !seenCategories[s.Category] {
			continue
		}
		if _, seen := byID[s.ID]; seen {
			continue
		}
		svc := Service{
			ID:               s.ID,
			CategoryID:       s.Category,
			Name:             s.Name,
			Description:      s.Description,
			PricePerThousand: s.Price,
			Min:              s.Min,
			Max:              s.Max,
			DurationSeconds:  s.Duration,
		}
		byID[s.ID] = svc
		services = append(services, svc)
	}

	return categories, services, byID
}
