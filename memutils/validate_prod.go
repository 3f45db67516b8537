//go:build !debug_arcow

package memutils

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_arcow build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugCheckRefCount will verify that the reference count passed in could belong to a live block,
// and panics if it is not. This method no-ops unless the debug_arcow build tag is present.
func DebugCheckRefCount[T Number](count T, name string) {
}
