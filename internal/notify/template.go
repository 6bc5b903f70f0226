package notify

import (
	"slices"
	"sync"
)

// Template is a pure content generator: given a Context it deterministically
// produces a subject line and a body, and declares a fixed priority and the
// set of mediums it may be delivered through.
type Template interface {
	Subject(c Context) string
	Body(c Context) string
	Priority() Priority
	Mediums() []Medium
}

// funcTemplate implements Template as a table of pure functions. All built-in
// templates are funcTemplate values; callers may register any Template
// implementation of their own.
type funcTemplate struct {
	subject  func(Context) string
	body     func(Context) string
	priority Priority
	mediums  []Medium
}

// NewTemplate builds a Template from a subject and body function plus fixed
// priority and supported-medium metadata.
func NewTemplate(priority Priority, mediums []Medium, subject, body func(Context) string) Template {
	return &funcTemplate{
		subject:  subject,
		body:     body,
		priority: priority,
		mediums:  slices.Clone(mediums),
	}
}

func (t *funcTemplate) Subject(c Context) string { return t.subject(c) }
func (t *funcTemplate) Body(c Context) string    { return t.body(c) }
func (t *funcTemplate) Priority() Priority       { return t.priority }
func (t *funcTemplate) Mediums() []Medium        { return slices.Clone(t.mediums) }

// Registry maps template names to templates. It is created once at startup
// and is safe for concurrent reads; Register is an administrative mutation.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Get returns the template registered under name, or a *TemplateNotFoundError.
func (r *Registry) Get(name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[name]
	if !ok {
		return nil, &TemplateNotFoundError{Name: name}
	}
	return t, nil
}

// Register inserts or overwrites the template under name.
func (r *Registry) Register(name string, t Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[name] = t
}

// List returns the registered template names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
