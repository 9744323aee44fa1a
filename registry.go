package devkit

import (
	"reflect"
	"sync"
)

// processorKey identifies a cached processor by record type, codec and
// resolved options.
type processorKey struct {
	typ         reflect.Type
	contentType string
	cfg         processorConfig
}

var (
	processors   = make(map[processorKey]any)
	processorsMu sync.RWMutex
)

func lookupProcessor[T Cloner[T]](key processorKey) (*Processor[T], bool) {
	processorsMu.RLock()
	defer processorsMu.RUnlock()
	cached, ok := processors[key]
	if !ok {
		return nil, false
	}
	return cached.(*Processor[T]), true
}

// Use returns the processor for T, codec and opts, building it on first use.
// Calls with equivalent options share one processor.
func Use[T Cloner[T]](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	key := processorKey{
		typ:         reflect.TypeFor[T](),
		contentType: codec.ContentType(),
		cfg:         resolveProcessorConfig(opts),
	}
	if p, ok := lookupProcessor[T](key); ok {
		return p, nil
	}

	processorsMu.Lock()
	defer processorsMu.Unlock()

	// Another caller may have built it while we waited for the write lock.
	if cached, ok := processors[key]; ok {
		return cached.(*Processor[T]), nil
	}

	p, err := NewProcessor[T](codec, opts...)
	if err != nil {
		return nil, err
	}
	processors[key] = p
	return p, nil
}

// UseCodec resolves a registered codec by name and returns its processor for T.
func UseCodec[T Cloner[T]](name string, opts ...ProcessorOption) (*Processor[T], error) {
	codec, err := DocumentCodec(name)
	if err != nil {
		return nil, err
	}
	return Use[T](codec, opts...)
}

// Reset drops every cached processor.
func Reset() {
	processorsMu.Lock()
	defer processorsMu.Unlock()
	processors = make(map[processorKey]any)
}
