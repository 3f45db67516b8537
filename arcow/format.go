package arcow

import "fmt"

// String formats the value the handle points at, as if the handle were the value itself
func (a *Arcow[T]) String() string {
	b := a.block
	if b == nil {
		return "Arcow/released"
	}
	return fmt.Sprint(b.value)
}

// GoString formats the handle as Arcow/<count>{<value>}, which is what the %#v verb prints
func (a *Arcow[T]) GoString() string {
	b := a.block
	if b == nil {
		return "Arcow/released"
	}
	return fmt.Sprintf("Arcow/%d{%#v}", b.Refs(), b.value)
}
