package eventkit

import (
	"fmt"
	"sync"
)

// Definition describes one declared event type.
type Definition struct {
	// Type is the event type tag ("order.created").
	Type string
	// Source names the subsystem that emits the type.
	Source string
	// Description explains what the event means.
	Description string
	// Tags group related types for lookup.
	Tags []string
	// Cancellable documents whether instances carry the Cancelable
	// capability. Informational; the dispatcher probes the instance.
	Cancellable bool
	// Validator, when set, runs against each instance during emit-time
	// validation.
	Validator func(Event) error
	// Deprecated marks the type as deprecated.
	Deprecated bool
	// DeprecationMessage says what to use instead.
	DeprecationMessage string
}

// Catalog tracks declared event types. Attach one to a Manager with
// WithCatalog and enable WithValidation to reject undeclared events at
// emit time. All methods are safe for concurrent use.
type Catalog struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		defs: make(map[string]*Definition),
	}
}

// Define adds a definition, replacing any previous one for the same
// type.
func (c *Catalog) Define(def *Definition) error {
	if def == nil || def.Type == "" {
		return ErrEmptyEventType
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs[def.Type] = def
	return nil
}

// Get returns the definition for an event type.
func (c *Catalog) Get(eventType string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[eventType]
	return def, ok
}

// Has reports whether the event type is declared.
func (c *Catalog) Has(eventType string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.defs[eventType]
	return ok
}

// Types returns all declared type tags, in no particular order.
func (c *Catalog) Types() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	types := make([]string, 0, len(c.defs))
	for t := range c.defs {
		types = append(types, t)
	}
	return types
}

// BySource returns the definitions declared by a source.
func (c *Catalog) BySource(source string) []*Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var defs []*Definition
	for _, def := range c.defs {
		if def.Source == source {
			defs = append(defs, def)
		}
	}
	return defs
}

// ByTag returns the definitions carrying a tag.
func (c *Catalog) ByTag(tag string) []*Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var defs []*Definition
	for _, def := range c.defs {
		for _, t := range def.Tags {
			if t == tag {
				defs = append(defs, def)
				break
			}
		}
	}
	return defs
}

// Range calls fn for each definition until fn returns false. The
// iteration works on a snapshot, so fn may safely call back into the
// catalog.
func (c *Catalog) Range(fn func(*Definition) bool) {
	c.mu.RLock()
	defs := make([]*Definition, 0, len(c.defs))
	for _, def := range c.defs {
		defs = append(defs, def)
	}
	c.mu.RUnlock()

	for _, def := range defs {
		if !fn(def) {
			return
		}
	}
}

// Validate checks an event against its declaration. Undeclared types
// fail with ErrUndeclaredType; declared types run the definition's
// Validator when one is set.
func (c *Catalog) Validate(evt Event) error {
	c.mu.RLock()
	def, ok := c.defs[evt.Type()]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUndeclaredType, evt.Type())
	}
	if def.Validator != nil {
		if err := def.Validator(evt); err != nil {
			return fmt.Errorf("validation failed for %s: %w", evt.Type(), err)
		}
	}
	return nil
}

// DefaultCatalog is the global catalog used by the package-level Define
// helpers.
var DefaultCatalog = NewCatalog()

// Define adds a definition to the default catalog.
func Define(def *Definition) error {
	return DefaultCatalog.Define(def)
}

// MustDefine adds a definition to the default catalog and panics on
// error. Intended for package init:
//
//	func init() {
//		eventkit.MustDefine(&eventkit.Definition{
//			Type:   "order.created",
//			Source: "orders",
//		})
//	}
func MustDefine(def *Definition) {
	if err := Define(def); err != nil {
		panic(fmt.Sprintf("failed to define event type: %v", err))
	}
}
