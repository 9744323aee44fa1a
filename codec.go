package devkit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

var (
	codecsMu sync.RWMutex
	codecs   = make(map[string]Codec)
)

// RegisterCodec makes a codec available to DocumentCodec under name and
// under its content type. Codec packages call it from init.
// Registering the same name twice replaces the earlier codec.
func RegisterCodec(name string, c Codec) {
	if c == nil {
		panic("devkit: RegisterCodec codec is nil")
	}
	codecsMu.Lock()
	defer codecsMu.Unlock()
	codecs[strings.ToLower(name)] = c
	codecs[strings.ToLower(c.ContentType())] = c
}

// DocumentCodec looks up a registered codec by short name ("yaml") or
// content type ("application/yaml").
func DocumentCodec(name string) (Codec, error) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	c, ok := codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, newConversionError(ErrInvalidFormat, "document.codec", fmt.Errorf("no codec registered for %q", name))
	}
	return c, nil
}

// CodecNames lists the registered short names and content types, sorted.
func CodecNames() []string {
	codecsMu.RLock()
	defer codecsMu.RUnlock()
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
