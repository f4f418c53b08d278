// Package container defines the interfaces and the error taxonomy
// shared by the container implementations under pkg/container.
package container

// Reader is the read-only part of an associative container
// that signals absence through a default return value.
type Reader[K comparable, V any] interface {
	Get(K) V
	Lookup(K) (v V, ok bool)
	ContainsKey(K) bool
	ContainsValue(V) bool
	Len() int
	IsEmpty() bool
	DefaultReturnValue() V
	Visit(func(K, V) (stop bool))
}

// Map is an associative container returning the default return value
// on a miss instead of reporting an error.
type Map[K comparable, V any] interface {
	Reader[K, V]
	Put(K, V) (previous V)
	Remove(K) (removed V)
	Clear()
	SetDefaultReturnValue(V)
}

// Mapper is the minimal map interface used for comparing
// implementations against each other.
type Mapper[K any, V any] interface {
	Set(K, V)
	Get(K) (v V, ok bool)
	Reset()
	Len() int
	Delete(K)
	Visit(func(K, V) (stop bool))
}
