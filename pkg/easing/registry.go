package easing

import (
	"sync"

	"github.com/go-drift/easelab/pkg/errors"
)

// DefaultID is substituted when a requested easing is not registered.
const DefaultID = "easeInOut"

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Easing)
	aliases    = make(map[string]string)
	order      []string
)

func init() {
	for _, e := range []Easing{
		{ID: "linear", Name: "Linear", Fn: Linear},
		{ID: "quadIn", Name: "Ease In (Quad)", Fn: QuadIn},
		{ID: "quadOut", Name: "Ease Out (Quad)", Fn: QuadOut},
		{ID: "quadInOut", Name: "Ease In Out (Quad)", Fn: QuadInOut},
		{ID: "circIn", Name: "Circ In", Fn: CircIn},
		{ID: "circOut", Name: "Circ Out", Fn: CircOut},
		{ID: "backIn", Name: "Back In", Fn: BackIn, Overshoots: true},
		{ID: "backOut", Name: "Back Out", Fn: BackOut, Overshoots: true},
		{ID: "anticipate", Name: "Anticipate", Fn: Anticipate},
		{ID: "ease", Name: "CSS ease", Fn: CSSEase},
		{ID: "cssEaseInOut", Name: "CSS ease-in-out", Fn: CSSEaseInOut},
	} {
		Register(e)
	}
	RegisterAlias("easeIn", "quadIn")
	RegisterAlias("easeOut", "quadOut")
	RegisterAlias("easeInOut", "quadInOut")
}

// Register adds an easing to the registry. It panics on an empty ID, a nil
// function, or an ID that is already registered.
func Register(e Easing) {
	if e.ID == "" || e.Fn == nil {
		panic("easing: Register requires an ID and a function")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[e.ID]; exists {
		panic("easing: duplicate registration for " + e.ID)
	}
	if _, exists := aliases[e.ID]; exists {
		panic("easing: " + e.ID + " is already an alias")
	}
	if e.Name == "" {
		e.Name = e.ID
	}
	registry[e.ID] = e
	order = append(order, e.ID)
}

// RegisterAlias makes alias resolve to the registered easing target.
func RegisterAlias(alias, target string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[target]; !ok {
		panic("easing: alias " + alias + " targets unregistered " + target)
	}
	if _, exists := registry[alias]; exists {
		panic("easing: alias " + alias + " shadows a registered easing")
	}
	aliases[alias] = target
}

// Lookup fetches an easing by ID or alias. Unknown IDs fail with an error
// matching errors.ErrUnknownEasing.
func Lookup(id string) (Easing, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if target, ok := aliases[id]; ok {
		id = target
	}
	e, ok := registry[id]
	if !ok {
		return Easing{}, &errors.EaseError{
			Op:   "easing.Lookup",
			Kind: errors.KindUnknownEasing,
			ID:   id,
			Err:  errors.ErrUnknownEasing,
		}
	}
	return e, nil
}

// LookupOrDefault fetches an easing by ID, substituting [DefaultID] when the
// ID is unknown. The miss is reported to the errors handler, not returned.
func LookupOrDefault(id string) Easing {
	e, err := Lookup(id)
	if err == nil {
		return e
	}
	if ee, ok := err.(*errors.EaseError); ok {
		errors.Report(ee)
	}
	e, err = Lookup(DefaultID)
	if err != nil {
		// DefaultID is registered in init; only a broken registry gets here.
		return Easing{ID: "linear", Name: "Linear", Fn: Linear}
	}
	return e
}

// MustLookup is like Lookup but panics on unknown IDs. Intended for
// package-level variables and tests.
func MustLookup(id string) Easing {
	e, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return e
}

// IDs returns the registered IDs in registration order. Aliases are omitted.
func IDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, len(order))
	copy(ids, order)
	return ids
}

// All returns the registered easings in registration order.
func All() []Easing {
	registryMu.RLock()
	defer registryMu.RUnlock()
	all := make([]Easing, 0, len(order))
	for _, id := range order {
		all = append(all, registry[id])
	}
	return all
}

// Aliases returns a copy of the alias table (alias → target ID).
func Aliases() map[string]string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
