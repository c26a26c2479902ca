package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements Store on a SurrealDB instance. Every leaf value in
// the path tree is one record in the kv table ({path, value}), with the
// value JSON-encoded. Subtree reads and deletes use prefix queries over
// the path column; writes replace the subtree and re-create its leaves in
// a single transaction, so one Write stays one atomic path replacement
// even though it may touch several leaf records.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
	prefix Path
}

// kvRecord is the stored shape of one leaf.
type kvRecord struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// NewSurrealDB creates a new SurrealDB-backed store.
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
		prefix: ParsePath(cfg.Prefix),
	}
}

// Connect establishes the connection and ensures the kv table and its
// path index exist.
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db

	setup := `
		DEFINE TABLE IF NOT EXISTS kv SCHEMALESS;
		DEFINE INDEX IF NOT EXISTS kv_path ON TABLE kv COLUMNS path UNIQUE;
	`
	if err := s.exec(ctx, setup, nil); err != nil {
		_ = db.Close(ctx)
		s.db = nil
		return fmt.Errorf("%w: schema setup failed: %v", ErrConnection, err)
	}
	return nil
}

// Close closes the connection.
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the connection.
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Exists reports whether any leaf is stored at or under path.
func (s *SurrealDB) Exists(ctx context.Context, path Path) (bool, error) {
	if err := path.Validate(); err != nil {
		return false, err
	}
	if s.db == nil {
		return false, ErrConnection
	}
	recs, err := s.selectSubtree(ctx, s.rooted(path), 1)
	if err != nil {
		return false, err
	}
	return len(recs) > 0, nil
}

// Read decodes the subtree rooted at path into dest.
func (s *SurrealDB) Read(ctx context.Context, path Path, dest any) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if s.db == nil {
		return ErrConnection
	}

	rooted := s.rooted(path)
	recs, err := s.selectSubtree(ctx, rooted, 0)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	// A single record at the exact path is a scalar leaf.
	if len(recs) == 1 && recs[0].Path == rooted.String() {
		if err := json.Unmarshal([]byte(recs[0].Value), dest); err != nil {
			return fmt.Errorf("%w: decode %s: %v", ErrQuery, path, err)
		}
		return nil
	}

	// Otherwise reassemble the subtree from its leaves.
	root := make(map[string]any)
	for _, rec := range recs {
		rel := ParsePath(rec.Path).Segments()[rooted.Len():]
		if len(rel) == 0 {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(rec.Value), &v); err != nil {
			return fmt.Errorf("%w: decode leaf %s: %v", ErrQuery, rec.Path, err)
		}
		node := root
		for _, seg := range rel[:len(rel)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		node[rel[len(rel)-1]] = v
	}

	raw, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrQuery, path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrQuery, path, err)
	}
	return nil
}

// Write replaces the subtree rooted at path with value. The old leaves
// are deleted and the new ones created inside one database transaction.
func (s *SurrealDB) Write(ctx context.Context, path Path, value any) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if s.db == nil {
		return ErrConnection
	}

	norm, err := normalize(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrQuery, path, err)
	}
	if norm == nil {
		return s.Delete(ctx, path)
	}

	rooted := s.rooted(path)
	leaves := flattenLeaves(norm)

	var b strings.Builder
	b.WriteString("BEGIN TRANSACTION;\n")
	b.WriteString("DELETE FROM kv WHERE path = $path OR string::starts_with(path, $pfx);\n")
	vars := map[string]interface{}{
		"path": rooted.String(),
		"pfx":  rooted.String() + "/",
	}
	for i, lf := range leaves {
		raw, err := json.Marshal(lf.value)
		if err != nil {
			return fmt.Errorf("%w: encode leaf %s: %v", ErrQuery, path, err)
		}
		pk := fmt.Sprintf("l%d_path", i)
		vk := fmt.Sprintf("l%d_value", i)
		fmt.Fprintf(&b, "CREATE kv SET path = $%s, value = $%s;\n", pk, vk)
		vars[pk] = rooted.Child(lf.rel...).String()
		vars[vk] = string(raw)
	}
	b.WriteString("COMMIT TRANSACTION;")

	return s.exec(ctx, b.String(), vars)
}

// Delete removes the subtree rooted at path. Absent paths are a no-op.
func (s *SurrealDB) Delete(ctx context.Context, path Path) error {
	if err := path.Validate(); err != nil {
		return err
	}
	if s.db == nil {
		return ErrConnection
	}

	rooted := s.rooted(path)
	query := "DELETE FROM kv WHERE path = $path OR string::starts_with(path, $pfx)"
	vars := map[string]interface{}{
		"path": rooted.String(),
		"pfx":  rooted.String() + "/",
	}
	return s.exec(ctx, query, vars)
}

// rooted prepends the configured prefix.
func (s *SurrealDB) rooted(path Path) Path {
	if s.prefix.IsRoot() {
		return path
	}
	return s.prefix.Child(path.Segments()...)
}

// selectSubtree fetches the leaf records at or under path. A limit of 0
// fetches all of them.
func (s *SurrealDB) selectSubtree(ctx context.Context, rooted Path, limit int) ([]kvRecord, error) {
	query := "SELECT path, value FROM kv WHERE path = $path OR string::starts_with(path, $pfx)"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	vars := map[string]interface{}{
		"path": rooted.String(),
		"pfx":  rooted.String() + "/",
	}

	results, err := surrealdb.Query[[]kvRecord](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}
	first := (*results)[0]
	if first.Status != "OK" {
		if first.Error != nil {
			return nil, fmt.Errorf("%w: %s", ErrQuery, first.Error.Message)
		}
		return nil, ErrQuery
	}
	return first.Result, nil
}

// exec runs a statement (or transaction) that returns no rows of interest.
func (s *SurrealDB) exec(ctx context.Context, query string, vars map[string]interface{}) error {
	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil
	}
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return ErrQuery
		}
	}
	return nil
}

// leaf is one scalar value with its path relative to the written root.
type leaf struct {
	rel   []string
	value any
}

// flattenLeaves decomposes a normalized JSON shape into its leaves in
// deterministic (sorted) order.
func flattenLeaves(v any) []leaf {
	var out []leaf
	var walk func(v any, rel []string)
	walk = func(v any, rel []string) {
		obj, ok := v.(map[string]any)
		if !ok {
			out = append(out, leaf{rel: append([]string(nil), rel...), value: v})
			return
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(obj[k], append(rel, k))
		}
	}
	walk(v, nil)
	return out
}
