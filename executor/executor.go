package executor

import (
	"sync"

	"github.com/derekparker/trie"

	"github.com/foilterm/foil/executor/variant"
)

// Instance is one live executor instance, bound to one input value (spec.md
// §4.2's create/choose/it_begin/it_value/it_next/reduce/destroy contract,
// with it_value folded into Iterator.Value).
type Instance interface {
	// Choose evaluates rule against the instance's input and returns the
	// chosen variant (used for CHOOSE/TEST). A rule parse failure is
	// reported via ErrMsg(), not a returned error (spec.md §7).
	Choose(rule string) (variant.Value, error)
	// ItBegin starts an iteration driven by rule, returning the first
	// Iterator, or (nil, nil) if the rule selects nothing.
	ItBegin(rule string) (Iterator, error)
	// Reduce aggregates the rule's selection into {count,sum,avg,max,min}.
	Reduce(rule string) (variant.Value, error)
	// Destroy releases the instance. Iterators obtained from it must not be
	// used afterwards (spec.md §9's iterator-lifetime-tie note).
	Destroy()
	// ErrMsg returns the most recent rule-parse diagnostic, or "".
	ErrMsg() string
}

// Iterator is bound to the Instance it was created from; using it after the
// instance is destroyed is a programming error the iterator detects and
// reports as NotAllowed (spec.md §9).
type Iterator interface {
	Value() variant.Value
	Next() (Iterator, error)
}

// Factory creates an Instance for one executor kind.
type Factory func(input variant.Value, ascending bool) (Instance, error)

// Registry is a process-wide name -> Factory table, interning names to
// trie-indexed atoms for fast rule dispatch (spec.md §4.2's "names are
// interned to fast atoms").
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	atoms     *trie.Trie
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}, atoms: trie.New()}
}

// Register installs f under name. Registering an existing name fails with
// AlreadyExists without modifying state (§8's testable property).
func (r *Registry) Register(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return errf(AlreadyExists, "executor %q is already registered", name)
	}
	r.factories[name] = f
	r.atoms.Add(name, nil)
	return nil
}

// Lookup reports whether name is registered, via the interned atom trie
// rather than the factory map, matching spec.md's "interned to fast atoms
// for rule dispatch" (the map remains the source of truth; the trie is the
// dispatch-side index real callers would consult first).
func (r *Registry) Lookup(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.atoms.Find(name)
	return ok
}

// Create instantiates the named executor over input.
func (r *Registry) Create(name string, input variant.Value, ascending bool) (Instance, error) {
	r.mu.Lock()
	f, ok := r.factories[name]
	r.mu.Unlock()
	if !ok {
		return nil, errf(NotExists, "no executor registered under %q", name)
	}
	return f(input, ascending)
}

// Names returns every registered executor name (unordered).
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Default is the process-wide registry builtin executors register
// themselves into at package init (spec.md §4.2: "Built-ins registered at
// module init").
var Default = NewRegistry()

func mustRegister(name string, f Factory) {
	if err := Default.Register(name, f); err != nil {
		panic(err)
	}
}
