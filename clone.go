package recode

// Cloner allows types to provide deep copy logic.
// Processor.Write converts fields on a clone so the caller's value is never
// modified.
//
// For value types with no pointers, slices or maps, Clone can return the
// receiver:
//
//	func (k Key) Clone() Key { return k }
//
// Types holding slices, maps or pointers to tagged structs must copy them,
// or Write will rewrite the original's backing storage:
//
//	func (k Keyring) Clone() Keyring {
//	    keys := make([]string, len(k.Keys))
//	    copy(keys, k.Keys)
//	    return Keyring{Owner: k.Owner, Keys: keys}
//	}
type Cloner[T any] interface {
	Clone() T
}
