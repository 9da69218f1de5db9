package node

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// hasher feeds values into an xxhash digest so that values which are
// reflect.DeepEqual produce the same bytes.
type hasher struct {
	d *xxhash.Digest
	// pointers on the current path, to stop at cycles
	seen map[uintptr]bool
	buf  [8]byte
}

func newHasher() *hasher {
	return &hasher{d: xxhash.New()}
}

func (h *hasher) uint(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	h.d.Write(h.buf[:])
}

func (h *hasher) float(f float64) {
	if f == 0 {
		// +0 and -0 compare equal
		f = 0
	}
	h.uint(math.Float64bits(f))
}

// enter returns false if the pointer p is already on the current path.
func (h *hasher) enter(p uintptr) bool {
	if h.seen == nil {
		h.seen = make(map[uintptr]bool)
	}
	if h.seen[p] {
		return false
	}
	h.seen[p] = true
	return true
}

func (h *hasher) value(v reflect.Value) {
	if !v.IsValid() {
		h.uint(0)
		return
	}
	h.uint(uint64(v.Kind()))
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			h.uint(1)
		} else {
			h.uint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.uint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		h.float(real(c))
		h.float(imag(c))
	case reflect.String:
		h.d.WriteString(v.String())
	case reflect.Array:
		h.elements(v)
	case reflect.Slice:
		if v.Len() == 0 {
			h.uint(0)
			return
		}
		p := v.Pointer()
		if !h.enter(p) {
			h.uint(math.MaxUint64)
			return
		}
		h.elements(v)
		delete(h.seen, p)
	case reflect.Map:
		h.uint(uint64(v.Len()))
		if v.Len() == 0 {
			return
		}
		p := v.Pointer()
		if !h.enter(p) {
			h.uint(math.MaxUint64)
			return
		}
		// map order is random, so the entries are combined with a sum
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			eh := &hasher{d: xxhash.New(), seen: h.seen}
			eh.value(iter.Key())
			eh.value(iter.Value())
			sum += eh.d.Sum64()
		}
		h.uint(sum)
		delete(h.seen, p)
	case reflect.Pointer:
		if v.IsNil() {
			h.uint(0)
			return
		}
		p := v.Pointer()
		if !h.enter(p) {
			h.uint(math.MaxUint64)
			return
		}
		h.value(v.Elem())
		delete(h.seen, p)
	case reflect.Interface:
		if v.IsNil() {
			h.uint(0)
			return
		}
		h.value(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			h.value(v.Field(i))
		}
	case reflect.Func:
		// only nil funcs are deeply equal
		if v.IsNil() {
			h.uint(0)
		} else {
			h.uint(1)
		}
	default:
		// channels and unsafe pointers compare by identity
		h.uint(uint64(v.Pointer()))
	}
}

func (h *hasher) elements(v reflect.Value) {
	h.uint(uint64(v.Len()))
	for i := 0; i < v.Len(); i++ {
		h.value(v.Index(i))
	}
}

// deepHash returns a hash of v that is equal for values that are
// reflect.DeepEqual.
func deepHash[V any](v V) uint64 {
	h := newHasher()
	h.value(reflect.ValueOf(&v).Elem())
	return h.d.Sum64()
}
