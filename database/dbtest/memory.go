// Package dbtest provides an in-memory database.Store for tests.
package dbtest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/princinho/arcadiabackend/database"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore keeps documents as marshalled bson so decoding goes through
// the same struct tags as the real driver.
type MemoryStore struct {
	mu          sync.Mutex
	name        string
	collections map[string][]bson.Raw

	// Err, when set, fails every operation.
	Err error
	// InsertErr, when set, fails inserts only.
	InsertErr error
	// Inserts counts successful inserts across all collections.
	Inserts int
}

var _ database.Store = (*MemoryStore)(nil)

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{name: name, collections: map[string][]bson.Raw{}}
}

func (m *MemoryStore) Name() string {
	return m.name
}

func (m *MemoryStore) Count(_ context.Context, collection string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.collections[collection])), nil
}

// Len is Count without error injection.
func (m *MemoryStore) Len(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func (m *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	if m.InsertErr != nil {
		return "", m.InsertErr
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return "", fmt.Errorf("unmarshal: %w", err)
	}

	id := bson.NewObjectID()
	hasID := false
	for _, e := range d {
		if e.Key == "_id" {
			if oid, ok := e.Value.(bson.ObjectID); ok {
				id = oid
			}
			hasID = true
		}
	}
	if !hasID {
		d = append(bson.D{{Key: "_id", Value: id}}, d...)
	}

	raw, err = bson.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	m.collections[collection] = append(m.collections[collection], raw)
	m.Inserts++
	return id.Hex(), nil
}

func (m *MemoryStore) FindAll(_ context.Context, collection string, filter bson.M, results any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return errors.New("results must be a pointer to a slice")
	}
	slice := rv.Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(m.collections[collection]))
	for _, raw := range m.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		elem := reflect.New(slice.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return fmt.Errorf("decode %s: %w", collection, err)
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

func (m *MemoryStore) FindOne(_ context.Context, collection string, filter bson.M, result any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, raw := range m.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return err
		}
		if ok {
			return bson.Unmarshal(raw, result)
		}
	}
	return database.ErrNotFound
}

func (m *MemoryStore) CollectionNames(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// matches supports top-level equality filters only.
func matches(raw bson.Raw, filter bson.M) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false, nil
		}
	}
	return true, nil
}
