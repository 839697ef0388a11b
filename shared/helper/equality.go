package helper

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equals is the deep structural equality oracle used when no explicit equality
// predicate is supplied.
func Equals(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// DeepHash hashes v structurally so that Equals(a, b) implies
// DeepHash(a) == DeepHash(b). Pointers are followed, map entries are combined
// order-independently and funcs contribute only their nil-ness.
func DeepHash(v any) uint64 {
	h := hasher{
		digest: xxhash.New(),
		stack:  map[visit]int{},
	}
	h.write(reflect.ValueOf(v))
	return h.digest.Sum64()
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

type hasher struct {
	digest *xxhash.Digest
	stack  map[visit]int
	buf    [8]byte
}

func (h *hasher) u64(x uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], x)
	_, _ = h.digest.Write(h.buf[:])
}

func (h *hasher) str(s string) {
	h.u64(uint64(len(s)))
	_, _ = h.digest.WriteString(s)
}

func (h *hasher) float(f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	h.u64(math.Float64bits(f))
}

// enter reports false when v is already being hashed further up the stack.
func (h *hasher) enter(v visit) bool {
	if depth, ok := h.stack[v]; ok {
		h.u64(uint64(depth))
		return false
	}
	h.stack[v] = len(h.stack)
	return true
}

func (h *hasher) write(v reflect.Value) {
	if !v.IsValid() {
		h.u64(0)
		return
	}
	h.str(v.Type().String())

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			h.u64(1)
		} else {
			h.u64(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.u64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.u64(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		h.float(real(c))
		h.float(imag(c))
	case reflect.String:
		h.str(v.String())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			h.write(v.Index(i))
		}
	case reflect.Slice:
		h.u64(uint64(v.Len()))
		if v.IsNil() || v.Len() == 0 {
			return
		}
		key := visit{ptr: v.Pointer(), typ: v.Type(), n: v.Len()}
		if !h.enter(key) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			h.write(v.Index(i))
		}
		delete(h.stack, key)
	case reflect.Map:
		h.u64(uint64(v.Len()))
		if v.IsNil() {
			return
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if !h.enter(key) {
			return
		}
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			entry := hasher{digest: xxhash.New(), stack: h.stack}
			entry.write(iter.Key())
			entry.write(iter.Value())
			sum += entry.digest.Sum64()
		}
		h.u64(sum)
		delete(h.stack, key)
	case reflect.Pointer:
		if v.IsNil() {
			h.u64(0)
			return
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if !h.enter(key) {
			return
		}
		h.write(v.Elem())
		delete(h.stack, key)
	case reflect.Interface:
		if v.IsNil() {
			h.u64(0)
			return
		}
		h.write(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			h.write(v.Field(i))
		}
	case reflect.Func:
		if v.IsNil() {
			h.u64(0)
		} else {
			h.u64(1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		h.u64(uint64(v.Pointer()))
	}
}

// EqualitySet answers membership under Equals in expected constant time by
// bucketing elements on DeepHash.
type EqualitySet[T any] struct {
	buckets map[uint64][]T
}

func NewEqualitySet[T any](items ...T) *EqualitySet[T] {
	s := &EqualitySet[T]{buckets: make(map[uint64][]T, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *EqualitySet[T]) Add(v T) {
	h := DeepHash(v)
	s.buckets[h] = append(s.buckets[h], v)
}

func (s *EqualitySet[T]) Contains(v T) bool {
	for _, candidate := range s.buckets[DeepHash(v)] {
		if Equals(candidate, v) {
			return true
		}
	}
	return false
}
