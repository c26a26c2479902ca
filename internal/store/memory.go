package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-memory Store backed by a nested map tree. It is the
// default backend in development and the backend the test suite runs on.
// Written values round-trip through JSON so the tree always holds plain
// JSON shapes, exactly what a remote backend would return.
//
// Empty collections are not stored: deleting the last child of a branch
// removes the branch itself, so Exists answers false once a subtree has
// been fully unwound.
type Memory struct {
	mu   sync.RWMutex
	root map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{root: make(map[string]any)}
}

// Connect is a no-op for the in-memory backend.
func (m *Memory) Connect(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }

// Ping is a no-op for the in-memory backend.
func (m *Memory) Ping(ctx context.Context) error { return nil }

// Exists reports whether a value is stored at or under path.
func (m *Memory) Exists(ctx context.Context, path Path) (bool, error) {
	if err := path.Validate(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.lookup(path)
	return ok, nil
}

// Read decodes the subtree rooted at path into dest.
func (m *Memory) Read(ctx context.Context, path Path, dest any) error {
	if err := path.Validate(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, ok := m.lookup(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	raw, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrQuery, path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrQuery, path, err)
	}
	return nil
}

// Write stores value at path, replacing any existing subtree. Writing nil
// (or a value that normalizes to nothing, such as an empty object) removes
// the subtree instead.
func (m *Memory) Write(ctx context.Context, path Path, value any) error {
	if err := path.Validate(); err != nil {
		return err
	}
	norm, err := normalize(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrQuery, path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if norm == nil {
		m.remove(path)
		return nil
	}

	segs := path.Segments()
	if len(segs) == 0 {
		obj, ok := norm.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: root value must be an object", ErrQuery)
		}
		m.root = obj
		return nil
	}

	node := m.root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			// Descending through a leaf replaces it with a branch.
			child = make(map[string]any)
			node[seg] = child
		}
		node = child
	}
	node[segs[len(segs)-1]] = norm
	return nil
}

// Delete removes the subtree rooted at path. Absent paths are a no-op.
func (m *Memory) Delete(ctx context.Context, path Path) error {
	if err := path.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(path)
	return nil
}

// lookup walks the tree and returns the node at path.
// Callers must hold at least a read lock.
func (m *Memory) lookup(path Path) (any, bool) {
	var node any = m.root
	for _, seg := range path.Segments() {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// remove deletes the node at path and prunes any branches left empty.
// Callers must hold the write lock.
func (m *Memory) remove(path Path) {
	segs := path.Segments()
	if len(segs) == 0 {
		m.root = make(map[string]any)
		return
	}

	type hop struct {
		node map[string]any
		key  string
	}
	chain := make([]hop, 0, len(segs))
	node := m.root
	for i, seg := range segs {
		chain = append(chain, hop{node: node, key: seg})
		if i == len(segs)-1 {
			break
		}
		child, ok := node[seg].(map[string]any)
		if !ok {
			return
		}
		node = child
	}

	delete(chain[len(chain)-1].node, chain[len(chain)-1].key)
	for i := len(chain) - 2; i >= 0; i-- {
		child, ok := chain[i].node[chain[i].key].(map[string]any)
		if ok && len(child) == 0 {
			delete(chain[i].node, chain[i].key)
		}
	}
}

// normalize round-trips value through JSON into plain map/slice/scalar
// shapes and drops empty objects, so stored trees never contain branches
// with nothing under them.
func normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return prune(v), nil
}

// prune removes nulls and empty objects recursively, returning nil when
// nothing remains.
func prune(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for k, child := range obj {
		if p := prune(child); p == nil {
			delete(obj, k)
		} else {
			obj[k] = p
		}
	}
	if len(obj) == 0 {
		return nil
	}
	return obj
}
