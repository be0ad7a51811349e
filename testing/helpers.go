// Package testing provides test utilities for recode.
package testing

import (
	"math/rand"
	"testing"
)

// TestBytes returns n pseudo-random bytes from a fixed seed, so benchmarks
// and property checks see the same data on every run.
func TestBytes(tb testing.TB, n int) []byte {
	tb.Helper()
	r := rand.New(rand.NewSource(int64(n) + 1252))
	b := make([]byte, n)
	_, _ = r.Read(b)
	return b
}

// AllBytes returns the 256 byte values in order.
func AllBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// PlainRecord is a test type with no conversion tags.
type PlainRecord struct {
	ID   string `json:"id" yaml:"id" msgpack:"id"`
	Name string `json:"name" yaml:"name" msgpack:"name"`
}

// Clone implements Cloner[PlainRecord].
func (r PlainRecord) Clone() PlainRecord { return r }

// TaggedRecord is a test type exercising each supported field shape.
// Its tags are chosen so that Write followed by Read restores every field.
type TaggedRecord struct {
	ID      string            `json:"id" yaml:"id" msgpack:"id"`
	Digest  string            `json:"digest" yaml:"digest" msgpack:"digest" recode:"hex,base64"`
	Token   string            `json:"token" yaml:"token" msgpack:"token" recode:"base64Url,base2"`
	Note    []byte            `json:"note" yaml:"note" msgpack:"note" recode:"utf8,latin1"`
	Aliases []string          `json:"aliases" yaml:"aliases" msgpack:"aliases" recode:"latin1,hex"`
	Labels  map[string]string `json:"labels" yaml:"labels" msgpack:"labels" recode:"windows1252,base64"`
}

// Clone implements Cloner[TaggedRecord].
func (r TaggedRecord) Clone() TaggedRecord {
	clone := r
	if r.Note != nil {
		clone.Note = append([]byte(nil), r.Note...)
	}
	if r.Aliases != nil {
		clone.Aliases = append([]string(nil), r.Aliases...)
	}
	if r.Labels != nil {
		clone.Labels = make(map[string]string, len(r.Labels))
		for k, v := range r.Labels {
			clone.Labels[k] = v
		}
	}
	return clone
}

// NewTaggedRecord returns a populated TaggedRecord.
func NewTaggedRecord() *TaggedRecord {
	return &TaggedRecord{
		ID:      "rec-1",
		Digest:  "48656c6c6f",
		Token:   "__7-",
		Note:    []byte("crème brûlée"),
		Aliases: []string{"primary", "naïve"},
		Labels:  map[string]string{"quote": "“smart” – quotes"},
	}
}
