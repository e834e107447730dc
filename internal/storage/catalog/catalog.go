package catalog

import (
	"fmt"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"sort"
	"sync"
)

// Catalog holds the bookable workspaces and conference rooms.
type Catalog struct {
	mu        sync.RWMutex
	resources map[models.ResourceKey]models.Resource
}

func New() *Catalog {
	return &Catalog{resources: make(map[models.ResourceKey]models.Resource)}
}

func (c *Catalog) Create(r models.Resource) error {
	const op = "storage.catalog.Create"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.resources[r.Key()]; ok {
		return fmt.Errorf("%s: %s: %w", op, r.Key(), storage.ErrResourceExists)
	}

	c.resources[r.Key()] = r

	return nil
}

func (c *Catalog) Get(key models.ResourceKey) (models.Resource, error) {
	const op = "storage.catalog.Get"

	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.resources[key]
	if !ok {
		return models.Resource{}, fmt.Errorf("%s: %s: %w", op, key, storage.ErrResourceNotFound)
	}

	return r, nil
}

// Update changes name and capacity; identity is fixed.
func (c *Catalog) Update(r models.Resource) error {
	const op = "storage.catalog.Update"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.resources[r.Key()]; !ok {
		return fmt.Errorf("%s: %s: %w", op, r.Key(), storage.ErrResourceNotFound)
	}

	c.resources[r.Key()] = r

	return nil
}

// Delete does not check for bookings that still reference the resource.
func (c *Catalog) Delete(key models.ResourceKey) error {
	const op = "storage.catalog.Delete"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.resources[key]; !ok {
		return fmt.Errorf("%s: %s: %w", op, key, storage.ErrResourceNotFound)
	}

	delete(c.resources, key)

	return nil
}

// List returns resources of the given kind, or all of them when kind is empty,
// workspaces first and then by id.
func (c *Catalog) List(kind models.Kind) []models.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Resource, 0, len(c.resources))
	for _, r := range c.resources {
		if kind == "" || r.Kind == kind {
			out = append(out, r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == models.KindWorkspace
		}
		return out[i].ID < out[j].ID
	})

	return out
}
