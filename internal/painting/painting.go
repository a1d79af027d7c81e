// Package painting holds the in-memory painting catalog the UI controllers
// work against.
package painting

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when no painting has the requested ID.
	ErrNotFound = errors.New("painting: not found")

	// ErrTitleMissing is returned when a painting is saved with a blank title.
	ErrTitleMissing = errors.New("painting: title missing")

	// ErrPictureMissing is returned when a painting is saved without a main picture.
	ErrPictureMissing = errors.New("painting: main picture missing")
)

// Painting is one catalog entry.
type Painting struct {
	ID          string
	Title       string
	MainPicture []byte
	Created     time.Time
}

// Catalog is a concurrency-safe in-memory painting store.
type Catalog struct {
	mu     sync.RWMutex
	seq    int
	items  map[string]Painting
	nowFun func() time.Time
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: map[string]Painting{}, nowFun: time.Now}
}

// Compose stores a new painting and returns it with its assigned ID.
func (c *Catalog) Compose(title string, mainPicture []byte) (Painting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Painting{}, ErrTitleMissing
	}
	if len(mainPicture) == 0 {
		return Painting{}, ErrPictureMissing
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	p := Painting{
		ID:          "p" + strconv.Itoa(c.seq),
		Title:       title,
		MainPicture: mainPicture,
		Created:     c.nowFun(),
	}
	c.items[p.ID] = p
	return p, nil
}

// Get returns the painting with id or ErrNotFound.
func (c *Catalog) Get(id string) (Painting, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.items[id]
	if !ok {
		return Painting{}, ErrNotFound
	}
	return p, nil
}

// Delete removes the painting with id or returns ErrNotFound.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}
	delete(c.items, id)
	return nil
}

// List returns all paintings, newest first.
func (c *Catalog) List() []Painting {
	c.mu.RLock()
	out := make([]Painting, 0, len(c.items))
	for _, p := range c.items {
		out = append(out, p)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.After(out[j].Created)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
