package boxed

import (
	"cmp"
	"reflect"
)

// Comparisons between boxes are address comparisons of their observers,
// exactly as for raw owning pointers. An empty box compares as address zero,
// so it acts as the null sentinel: two empty boxes are equal and an empty
// box orders before every non-empty one.

// Equal reports whether a and b observe the same object address. The view
// types may differ; two views of the same owned object compare equal.
func Equal[T any, U any](a Ptr[T], b Ptr[U]) bool {
	return addrOf(any(a.obs)) == addrOf(any(b.obs))
}

// Compare orders a and b by observer address, returning -1, 0 or +1.
func Compare[T any, U any](a Ptr[T], b Ptr[U]) int {
	return cmp.Compare(addrOf(any(a.obs)), addrOf(any(b.obs)))
}

// Less reports whether a orders before b.
func Less[T any, U any](a Ptr[T], b Ptr[U]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a orders before or equal to b.
func LessEqual[T any, U any](a Ptr[T], b Ptr[U]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders after b.
func Greater[T any, U any](a Ptr[T], b Ptr[U]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports whether a orders after or equal to b.
func GreaterEqual[T any, U any](a Ptr[T], b Ptr[U]) bool {
	return Compare(a, b) >= 0
}

// addrOf extracts the address behind a pointer-shaped view. Views are
// pointers or interfaces over pointers; anything else has no address
// identity and compares as zero.
func addrOf(v any) uintptr {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return rv.Pointer()
	default:
		return 0
	}
}
