package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Turns arbitrary keys (node pointers, ids) into readable names like
// "BraveOtter", so that a trace of a few hundred flips can be followed by eye.
// Names are generated lazily and never forgotten, which leaks memory, but only
// in code paths that are actually printing debug output.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Names are handed out in order of demand, so the same name doesn't refer
	// to the same thing between runs. Make that obvious.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Number of names handed out so far.
func Len() int {
	memoMu.Lock()
	defer memoMu.Unlock()
	return len(memo)
}
