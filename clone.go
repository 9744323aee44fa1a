package devkit

// Cloner allows types to provide deep copy logic.
// Processor requires it so that Apply never touches the caller's value.
//
// Value types without pointers, slices or maps can return the receiver:
//
//	func (r Record) Clone() Record { return r }
//
// Types with reference fields must copy them:
//
//	func (r Record) Clone() Record {
//	    tags := make([]string, len(r.Tags))
//	    copy(tags, r.Tags)
//	    r.Tags = tags
//	    return r
//	}
type Cloner[T any] interface {
	Clone() T
}
