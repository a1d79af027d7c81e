package overview

import (
	"encoding/base64"
	"sync"

	"github.com/x4fyr/paiman/internal/painting"
	"github.com/x4fyr/paiman/internal/services"
)

// Preview is one tile of the overview list.
type Preview struct {
	ID          string
	Title       string
	PictureData string
}

// Draft is the painting being composed by the add dialog.
type Draft struct {
	Title   string
	Picture *services.Picture
}

// Model is the overview's view of the painting catalog plus the current draft.
type Model struct {
	catalog *painting.Catalog

	mu    sync.Mutex
	draft Draft
}

// NewModel returns a model over catalog with an empty draft.
func NewModel(catalog *painting.Catalog) *Model {
	return &Model{catalog: catalog}
}

// Previews lists the catalog newest first.
func (m *Model) Previews() []Preview {
	ps := m.catalog.List()
	out := make([]Preview, len(ps))
	for i, p := range ps {
		out[i] = Preview{
			ID:          p.ID,
			Title:       p.Title,
			PictureData: base64.StdEncoding.EncodeToString(p.MainPicture),
		}
	}
	return out
}

// Painting returns the painting with id.
func (m *Model) Painting(id string) (painting.Painting, error) {
	return m.catalog.Get(id)
}

// Delete removes the painting with id.
func (m *Model) Delete(id string) error {
	return m.catalog.Delete(id)
}

// Stage replaces the draft.
func (m *Model) Stage(d Draft) {
	m.mu.Lock()
	m.draft = d
	m.mu.Unlock()
}

// Draft returns the current draft.
func (m *Model) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// SaveNewPainting stores the draft and clears it. The draft is kept on error.
func (m *Model) SaveNewPainting() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var data []byte
	if m.draft.Picture != nil {
		data = m.draft.Picture.Data
	}
	p, err := m.catalog.Compose(m.draft.Title, data)
	if err != nil {
		return "", err
	}
	m.draft = Draft{}
	return p.ID, nil
}
