package model

import (
	"time"

	"github.com/google/uuid"
)

// LoadTemplate is a reusable loading configuration: a container size, a
// solver configuration, and an item list, without any solved placements. Useful
// for recurring shipments where the same cargo manifest gets loaded into a
// fresh container repeatedly.
type LoadTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Items       []Item   `json:"items"`
	Config      SolveConfig `json:"config"`
	ContainerL  float64  `json:"container_l"`
	ContainerW  float64  `json:"container_w"`
	ContainerH  float64  `json:"container_h"`
	MaxWeight   float64  `json:"max_weight"`
}

// NewLoadTemplate creates a template from an item catalog and container
// geometry, intentionally excluding any placement result.
func NewLoadTemplate(name, description string, items []Item, preset ContainerPreset, cfg SolveConfig) LoadTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return LoadTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       copyItems(items),
		Config:      cfg,
		ContainerL:  preset.L,
		ContainerW:  preset.W,
		ContainerH:  preset.H,
		MaxWeight:   preset.MaxWeight,
	}
}

// NewItems mints a fresh Item set from the template, each with a new ID and
// cleared placement state, so they are independent of any prior solve.
func (t LoadTemplate) NewItems() []Item {
	items := make([]Item, len(t.Items))
	for i, src := range t.Items {
		it := NewItem(src.Name, src.L, src.W, src.H, src.Weight, src.PackagingType)
		it.TypeID = src.TypeID
		it.MaxLoadOnTop = src.MaxLoadOnTop
		it.AllowStacking = src.AllowStacking
		it.Priority = src.Priority
		items[i] = it
	}
	return items
}

// TemplateStore holds a collection of load templates.
type TemplateStore struct {
	Templates []LoadTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []LoadTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LoadTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *LoadTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names, for a CLI list command.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *LoadTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copyItems creates a shallow copy of an item slice.
func copyItems(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return cp
}
