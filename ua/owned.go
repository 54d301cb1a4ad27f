package ua

import "unsafe"

// Owned holds a native resource-owning value until the value is dropped or
// ownership is given away. The zero Owned is released; use OwnRaw or
// InitOwned. Fields are unexported so the state machine cannot be bypassed.
type Owned[N any] struct {
	value N
	clean func(*N)
	held  bool
}

// OwnRaw takes ownership of value. When the container is dropped, clean
// runs on the held value.
//
// Ownership of value passes to the container. This must only be used for
// values that are not embedded in other owning structures, which would also
// attempt to free them.
func OwnRaw[N any](value N, clean func(*N)) *Owned[N] {
	return &Owned[N]{value: value, clean: clean, held: true}
}

// InitOwned creates a container holding a zero-initialized value. Zeroed
// memory is a well-formed, minimally configured value for every native
// structure handled by this package; there is no error path.
func InitOwned[N any](clean func(*N)) *Owned[N] {
	var zero N
	return OwnRaw(zero, clean)
}

// Release gives up ownership and returns the value. The caller must re-wrap
// it with OwnRaw, clean it manually, or hand it to an owning engine call to
// not leak its resources; the container performs no cleanup afterwards.
//
// Release panics if ownership was already given away.
func (o *Owned[N]) Release() N {
	o.mustHold("Release")
	value := o.value
	var zero N
	o.value = zero
	o.held = false
	return value
}

// Value returns exclusive access to the held value.
//
// Ownership must not be given away through the returned pointer, in whole
// or in part. Engine calls that consume the value by pointer must be
// followed by Release to record the transfer; otherwise the value is freed
// twice. Conversely, calling Release when no transfer actually happened
// abandons a live value to the caller, who then must free it.
//
// Value panics if ownership was already given away.
func (o *Owned[N]) Value() *N {
	o.mustHold("Value")
	return &o.value
}

// Ptr returns the held value as a raw pointer for engine calls. The
// transfer rules of Value apply.
func (o *Owned[N]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(o.Value())
}

// Held reports whether the container still owns its value.
func (o *Owned[N]) Held() bool {
	return o.held
}

// Drop cleans up the held value exactly once. After Release, or after a
// previous Drop, it is a no-op; callers defer it unconditionally.
func (o *Owned[N]) Drop() {
	if !o.held {
		return
	}
	o.held = false
	if o.clean != nil {
		o.clean(&o.value)
	}
	var zero N
	o.value = zero
}

func (o *Owned[N]) mustHold(op string) {
	if !o.held {
		panic("ua: " + op + " on released container")
	}
}
