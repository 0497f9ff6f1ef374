// success.go - the per-trait success singleton.
//
// Go has no per-instantiation package variables, so the shared instances live
// in one process-wide map keyed by the trait's reflect.Type. LoadOrCompute
// runs the constructor at most once per key, also under concurrent first use.
// Entries are never removed.
package xgxresult

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
)

var successes = xsync.NewMapOf[reflect.Type, any]()

// Success returns the shared success result of trait T: the trait's success
// code and an empty message.
//
// The shared instance is returned by value, so appending to the returned
// result never changes what later callers get.
func Success[T ErrorTrait[C], C Code]() Result[T, C] {
	v, _ := successes.LoadOrCompute(reflect.TypeFor[T](), func() any {
		return New[T, C](traitOf[T, C]().Success())
	})
	return v.(Result[T, C])
}
