package atomcss

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// DefaultClassPrefix starts every generated class name.
const DefaultClassPrefix = "z-"

// Hasher maps a declaration to a stable integer.
type Hasher interface {
	Sum32(s string) uint32
}

// HasherFunc adapts a function to Hasher.
type HasherFunc func(s string) uint32

// Sum32 implements Hasher.
func (f HasherFunc) Sum32(s string) uint32 { return f(s) }

// FNV1a is the default Hasher: 32-bit FNV-1a over the UTF-8 bytes.
var FNV1a Hasher = HasherFunc(func(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
})

// DeriveClassName returns the class name of a declaration using the
// default prefix and hasher. Surrounding whitespace is ignored.
func DeriveClassName(declaration string) string {
	return deriveClassName(DefaultClassPrefix, FNV1a, strings.TrimSpace(declaration))
}

func deriveClassName(prefix string, h Hasher, declaration string) string {
	return prefix + strconv.FormatUint(uint64(h.Sum32(declaration)), 16)
}
