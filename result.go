package bitecs

// Result is the outcome of a non-asserting Try* operation. The core
// Add/Get/Remove/Has family signals every precondition violation with a
// panic (see spec §7); Result exists for call sites — such as the CLI front
// ends — that would rather report a problem to a user than crash.
type Result int

const (
	// ResultOK indicates the operation completed normally.
	ResultOK Result = iota
	// ResultAlreadyPresent indicates a TryAdd found the component already set.
	ResultAlreadyPresent
	// ResultNotPresent indicates a TryGet/TryRemove found the component unset.
	ResultNotPresent
	// ResultInvalidID indicates the entity or group id was not valid.
	ResultInvalidID
	// ResultCapacityExhausted indicates a 16-bit counter would have
	// overflowed.
	ResultCapacityExhausted
)

// String renders a Result for logging/diagnostics.
func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultAlreadyPresent:
		return "already present"
	case ResultNotPresent:
		return "not present"
	case ResultInvalidID:
		return "invalid id"
	case ResultCapacityExhausted:
		return "capacity exhausted"
	default:
		return "unknown result"
	}
}

// TryHas is the non-asserting form of Has: it never panics on an invalid
// entity, reporting ResultInvalidID instead.
func TryHas[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T]) (bool, Result) {
	if !c.IsValidEntity(e) {
		return false, ResultInvalidID
	}
	return Has(c, e, sel), ResultOK
}

// TryGet is the non-asserting form of Get.
func TryGet[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T]) (ComponentRef[T], Result) {
	if !c.IsValidEntity(e) {
		return ComponentRef[T]{}, ResultInvalidID
	}
	if !Has(c, e, sel) {
		return ComponentRef[T]{}, ResultNotPresent
	}
	return Get(c, e, sel), ResultOK
}

// TryAdd is the non-asserting form of Add.
func TryAdd[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T], value T) (ComponentRef[T], Result) {
	if !c.IsValidEntity(e) {
		return ComponentRef[T]{}, ResultInvalidID
	}
	if Has(c, e, sel) {
		return ComponentRef[T]{}, ResultAlreadyPresent
	}
	return Add(c, e, sel, value), ResultOK
}

// TryRemove is the non-asserting form of Remove.
func TryRemove[E Group, T any](c *Context[E], e EntityID, sel func(E) *TypedManager[T]) Result {
	if !c.IsValidEntity(e) {
		return ResultInvalidID
	}
	if !Has(c, e, sel) {
		return ResultNotPresent
	}
	Remove(c, e, sel)
	return ResultOK
}
