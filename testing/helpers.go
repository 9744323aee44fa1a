// Package testing provides fixtures and deterministic sources for devkit tests.
package testing

import (
	"bytes"
	"encoding/binary"
	"io"
)

// SequenceSource returns a reader yielding big-endian uint32 values 0..n-1.
// With a Generator it makes token output predictable.
func SequenceSource(n int) io.Reader {
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(buf[i*4:], uint32(i))
	}
	return bytes.NewReader(buf)
}

// ConstantSource returns a reader yielding n copies of b.
func ConstantSource(b byte, n int) io.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, n))
}

// PlainRecord is a test type with no transformation tags.
type PlainRecord struct {
	ID   string `json:"id" yaml:"id" xml:"id" bson:"id"`
	Name string `json:"name" yaml:"name" xml:"name" bson:"name"`
}

// Clone implements Cloner[PlainRecord].
func (r PlainRecord) Clone() PlainRecord { return r }

// TaggedRecord is a test type using every transformation tag.
type TaggedRecord struct {
	ID       string   `json:"id" yaml:"id" xml:"id" bson:"id"`
	Key      string   `json:"key" yaml:"key" xml:"key" bson:"key" case:"snake"`
	Labels   []string `json:"labels" yaml:"labels" xml:"label" bson:"labels" case:"kebab"`
	Note     string   `json:"note" yaml:"note" xml:"note" bson:"note" encode:"base64"`
	Query    string   `json:"query" yaml:"query" xml:"query" bson:"query" encode:"url"`
	Checksum string   `json:"checksum" yaml:"checksum" xml:"checksum" bson:"checksum" digest:"sha256"`
}

// Clone implements Cloner[TaggedRecord].
func (r TaggedRecord) Clone() TaggedRecord {
	c := r
	if r.Labels != nil {
		c.Labels = make([]string, len(r.Labels))
		copy(c.Labels, r.Labels)
	}
	return c
}

// SampleTaggedRecord returns a populated TaggedRecord.
func SampleTaggedRecord() TaggedRecord {
	return TaggedRecord{
		ID:       "rec-1",
		Key:      "userName",
		Labels:   []string{"HelloWorld", "fooBar"},
		Note:     "hello",
		Query:    "a b&c",
		Checksum: "abc",
	}
}

// Expected fields of SampleTaggedRecord after transformation.
const (
	WantKey      = "user_name"
	WantNote     = "aGVsbG8="
	WantQuery    = "a%20b%26c"
	WantChecksum = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

// WantLabels are the expected labels of SampleTaggedRecord after transformation.
func WantLabels() []string {
	return []string{"hello-world", "foo-bar"}
}
