package recode

// Override interfaces let a type convert its own fields instead of going
// through the reflection plans built from `recode` tags. A code generator can
// implement them from the same tags.

// EgressRecoder bypasses reflection in Processor.Write.
type EgressRecoder interface {
	// RecodeEgress converts the receiver's fields from their source to their
	// destination encoding. The receiver is a clone, so mutations are safe.
	RecodeEgress() error
}

// IngressRecoder bypasses reflection in Processor.Read.
type IngressRecoder interface {
	// RecodeIngress converts the receiver's fields back from their
	// destination to their source encoding. Called on freshly unmarshaled data.
	RecodeIngress() error
}
