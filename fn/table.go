package fn

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/on-the-ground/collect_ive_go/config"
	"go.uber.org/zap"
)

// table is a bounded memo split into two generations. Stores go to the head
// generation; when it is full the generations rotate and the older one is
// discarded. Hits in the older generation are promoted to the head.
type table[K comparable, V any] struct {
	mu      sync.Mutex
	gens    [2]map[K]V
	headIdx int
	maxSize uint32

	// checkKeys is set when K can hold a dynamic value that is not comparable.
	checkKeys bool
}

func newTable[K comparable, V any](maxSize uint32) *table[K, V] {
	if maxSize == 0 {
		maxSize = config.Current().MemoTableSize
	}
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &table[K, V]{
		gens:      [2]map[K]V{{}, {}},
		maxSize:   maxSize,
		checkKeys: mayPanicAsKey(reflect.TypeFor[K]()),
	}
}

// mayPanicAsKey reports whether a map insert with a key of type t can panic:
// interfaces, and arrays or structs containing one.
func mayPanicAsKey(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayPanicAsKey(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayPanicAsKey(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func comparableValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || comparableValue(v.Elem())
	case reflect.Array:
		for i := range v.Len() {
			if !comparableValue(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range v.NumField() {
			if !comparableValue(v.Field(i)) {
				return false
			}
		}
		return true
	}
	return v.Type().Comparable()
}

// cacheable reports whether key can be stored. A slice, map or func behind an
// interface cannot; callers compute such calls without the table.
func (t *table[K, V]) cacheable(key K) bool {
	if !t.checkKeys || comparableValue(reflect.ValueOf(&key).Elem()) {
		return true
	}
	config.Logger().Debug("skipping memo for uncomparable key", zap.String("type", fmt.Sprintf("%T", key)))
	return false
}

func (t *table[K, V]) load(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.gens[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.gens[1-t.headIdx][key]
	if ok {
		t.storeLocked(key, v)
	}
	return v, ok
}

func (t *table[K, V]) store(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.storeLocked(key, value)
}

func (t *table[K, V]) storeLocked(key K, value V) {
	head := t.gens[t.headIdx]
	if _, ok := head[key]; !ok && uint32(len(head)) >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		clear(t.gens[t.headIdx])
		config.Logger().Debug("rotated memo table", zap.Uint32("max_size", t.maxSize))
	}
	t.gens[t.headIdx][key] = value
}

func (t *table[K, V]) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.gens[0]) + len(t.gens[1])
}
