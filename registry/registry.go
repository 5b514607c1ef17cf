package registry

import (
	"encoding/json"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/cosmos/abidecoder/signature"
	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
)

// Registry maps function selectors and event topics to the schema entries
// that produced them.
//
// methodIDs is the live lookup index (last write wins on a key collision),
// savedABIs is the append-only history of every entry ever added. Remove only
// touches the index.
type Registry struct {
	mu        sync.RWMutex
	methodIDs map[string]types.SchemaEntry
	savedABIs []types.SchemaEntry

	computer signature.Computer
	logger   log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithComputer sets the signature computer used to derive keys.
func WithComputer(c signature.Computer) Option {
	return func(r *Registry) {
		r.computer = c
	}
}

// WithLogger sets the registry logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		methodIDs: make(map[string]types.SchemaEntry),
		computer:  signature.NewComputer(nil),
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "registry")
	return r
}

// Add indexes every named entry under its derived key and appends the whole
// batch, unnamed entries included, to the history.
func (r *Registry) Add(entries []types.SchemaEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var indexed, skipped int
	for _, entry := range entries {
		key, ok := r.key(entry)
		if !ok {
			skipped++
			continue
		}
		r.methodIDs[key] = entry
		indexed++
	}
	r.savedABIs = append(r.savedABIs, entries...)

	r.logger.Debug("added abi entries", "indexed", indexed, "skipped", skipped, "total", len(r.methodIDs))
}

// Remove drops the index entry of every named entry. Absent keys are ignored
// and the history is left untouched.
func (r *Registry) Remove(entries []types.SchemaEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int
	for _, entry := range entries {
		key, ok := r.key(entry)
		if !ok {
			continue
		}
		if _, found := r.methodIDs[key]; found {
			delete(r.methodIDs, key)
			removed++
		}
	}

	r.logger.Debug("removed abi entries", "removed", removed, "total", len(r.methodIDs))
}

// AddJSON registers the entries of a JSON ABI. The document must be a JSON
// array, otherwise ErrRegistrationType is returned and nothing is registered.
func (r *Registry) AddJSON(raw []byte) error {
	entries, err := ParseEntries(raw)
	if err != nil {
		return err
	}
	r.Add(entries)
	return nil
}

// RemoveJSON unregisters the entries of a JSON ABI. The document must be a
// JSON array, otherwise ErrRegistrationType is returned and nothing is removed.
func (r *Registry) RemoveJSON(raw []byte) error {
	entries, err := ParseEntries(raw)
	if err != nil {
		return err
	}
	r.Remove(entries)
	return nil
}

// ParseEntries decodes a JSON ABI array. Elements that are not objects are
// kept as empty (unnamed) entries so they are recorded but never indexed.
func ParseEntries(raw []byte) ([]types.SchemaEntry, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorsmod.Wrap(types.ErrRegistrationType, "invalid json")
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, errorsmod.Wrapf(types.ErrRegistrationType, "got json %s", doc.Type)
	}

	elems := doc.Array()
	entries := make([]types.SchemaEntry, len(elems))
	for i, elem := range elems {
		if !elem.IsObject() {
			continue
		}
		if err := json.Unmarshal([]byte(elem.Raw), &entries[i]); err != nil {
			return nil, errorsmod.Wrapf(types.ErrRegistrationType, "entry %d: %s", i, err)
		}
	}
	return entries, nil
}

// key returns the index key of a named entry.
func (r *Registry) key(entry types.SchemaEntry) (string, bool) {
	if entry.Name == "" {
		return "", false
	}
	return r.computer.Key(entry)
}

// Lookup returns the entry currently indexed under key.
func (r *Registry) Lookup(key string) (types.SchemaEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.methodIDs[key]
	return entry, ok
}

// ABIs returns a copy of the registration history in append order.
func (r *Registry) ABIs() []types.SchemaEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.SchemaEntry, len(r.savedABIs))
	copy(out, r.savedABIs)
	return out
}

// MethodIDs returns a copy of the lookup index.
func (r *Registry) MethodIDs() map[string]types.SchemaEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]types.SchemaEntry, len(r.methodIDs))
	for k, v := range r.methodIDs {
		out[k] = v
	}
	return out
}

// Len returns the number of indexed keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.methodIDs)
}

// Computer returns the signature computer used by the registry.
func (r *Registry) Computer() signature.Computer {
	return r.computer
}
