package devkit

// Transformable bypasses reflection-based field processing.
// When *T implements it, Processor calls Transform on the clone instead of
// walking the case, encode and digest tags. A generator can emit these
// methods from the same tags.
type Transformable interface {
	// Transform rewrites the receiver's fields. The receiver is a clone,
	// so mutations are safe.
	Transform() error
}
