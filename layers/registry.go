package layers

import (
	"sort"
	"sync"
)

// Registry holds the compiled codecs of Root categories by name. It refuses a
// root that would make another registered hierarchy ambiguous.
type Registry struct {
	mu     sync.RWMutex
	opts   []Option
	cfg    Options
	codecs map[string]*Codec
}

func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		opts:   opts,
		cfg:    newOptions(opts...),
		codecs: map[string]*Codec{},
	}
}

// Register compiles c and records it under c.Name.
func (r *Registry) Register(c *Category) (*Codec, error) {
	if c == nil {
		return nil, schemaErrorf(ErrInvalidCategory, "", "", "nil category")
	}
	if !c.Root {
		return nil, schemaErrorf(ErrNotRoot, c.Name, "", "")
	}
	codec, err := Compile(c, r.opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.codecs[codec.name]; ok {
		return nil, schemaErrorf(ErrDuplicateRoot, codec.name, "", "")
	}
	// Compile already refused registered roots nested under c. This catches c
	// having been nested, untagged, under a root registered earlier.
	for _, name := range r.sortedNames() {
		if r.codecs[name].reaches(c) {
			return nil, schemaErrorf(ErrNestedRoot, name, "", "category %q is reachable from registered root %q", c.Name, name)
		}
	}

	r.codecs[codec.name] = codec
	r.cfg.infof("layers: registered root %s count=%d layout=%s", codec.name, codec.count, codec.fingerprint)
	return codec, nil
}

// MustRegister panics if Register fails.
func (r *Registry) MustRegister(c *Category) *Codec {
	codec, err := r.Register(c)
	if err != nil {
		panic(err)
	}
	return codec
}

func (r *Registry) Get(name string) (*Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codec, ok := r.codecs[name]
	return codec, ok
}

// Names returns the registered root names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedNames()
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
