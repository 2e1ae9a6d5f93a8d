// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rsk

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	vectors := []struct {
		name string
		data []byte
		ext  string
	}{
		{"banana", []byte("banana"), ".txt"},
		{"single byte", []byte("A"), ".bin"},
		{"all same byte", []byte("AAAAA"), ""},
		{"abracadabra", []byte("abracadabra"), ".txt"},
		{"two symbol", []byte("ababababab"), ".dat"},
	}

	full := make([]byte, 256)
	for i := range full {
		full[i] = byte(i)
	}
	vectors = append(vectors, struct {
		name string
		data []byte
		ext  string
	}{"full alphabet", full, ".dat"})

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			container, err := Compress(v.data, v.ext)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			gotExt, gotData, err := Decompress(container)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if gotExt != v.ext {
				t.Errorf("ext = %q, want %q", gotExt, v.ext)
			}
			if !bytes.Equal(gotData, v.data) {
				t.Errorf("data mismatch:\ngot  %q\nwant %q", gotData, v.data)
			}
		})
	}
}

func TestCompressDecompressRandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 65536)
	rng.Read(data)

	container, err := Compress(data, ".rnd")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	ext, got, err := Decompress(container)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if ext != ".rnd" {
		t.Errorf("ext = %q, want .rnd", ext)
	}
	if !bytes.Equal(got, data) {
		t.Error("round-trip mismatch on random data")
	}
}

func TestCompressDecompressBitPackingBoundaryLengths(t *testing.T) {
	for _, n := range []int{7, 8, 9, 15, 16, 17} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte('a' + i%7)
		}
		container, err := Compress(data, "")
		if err != nil {
			t.Fatalf("length %d: Compress: %v", n, err)
		}
		_, got, err := Decompress(container)
		if err != nil {
			t.Fatalf("length %d: Decompress: %v", n, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("length %d: round-trip mismatch: got %q, want %q", n, got, data)
		}
	}
}

func TestCompressEmptyInputFails(t *testing.T) {
	_, err := Compress(nil, "")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if e, ok := err.(*Error); !ok || e.Kind != EmptyInput {
		t.Fatalf("got %v, want *Error{Kind: EmptyInput}", err)
	}
}

// TestCompressSingleSymbolEmitsNoPayload exercises the 4.6 degenerate path.
// With the full 256-entry move-to-front list from 4.2, a repeated non-zero
// byte (e.g. repeated 'A') actually produces two distinct MTF symbols: the
// byte's initial position in the identity list on its first occurrence,
// and 0 for every occurrence after that moves it to the front. A run of
// NUL bytes is the input that genuinely collapses to a single MTF symbol,
// since byte 0 already sits at position 0 in the identity list.
func TestCompressSingleSymbolEmitsNoPayload(t *testing.T) {
	container, err := Compress(bytes.Repeat([]byte{0}, 6), "")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	c := parseContainer(container)
	if len(c.freqs) != 1 {
		t.Fatalf("frequency table size = %d, want 1", len(c.freqs))
	}
	if len(c.payload) != 0 {
		t.Fatalf("payload length = %d, want 0 for single-symbol input", len(c.payload))
	}
}

func TestDecompressRejectsTruncatedContainer(t *testing.T) {
	container, err := Compress([]byte("abracadabra"), ".txt")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	truncated := container[:len(container)-1]
	_, _, err = Decompress(truncated)
	if err == nil {
		t.Fatal("expected error for truncated container")
	}
}

func TestDecompressRejectsCorruptPrimaryIndex(t *testing.T) {
	container, err := Compress([]byte("abracadabra"), ".txt")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	c := parseContainer(container)
	bad := writeContainer(c.ext, c.freqs, c.originalSize, uint64(c.originalSize), c.payload)
	_, _, err = Decompress(bad)
	if err == nil {
		t.Fatal("expected error for out-of-range primary index")
	}
	if e, ok := err.(*Error); !ok || e.Kind != CorruptHeader {
		t.Fatalf("got %v, want *Error{Kind: CorruptHeader}", err)
	}
}

func TestDecompressRejectsMismatchedFrequencySum(t *testing.T) {
	container, err := Compress([]byte("abracadabra"), ".txt")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	c := parseContainer(container)
	bad := writeContainer(c.ext, c.freqs, c.originalSize+1, c.primaryIndex, c.payload)
	_, _, err = Decompress(bad)
	if err == nil {
		t.Fatal("expected error for mismatched frequency sum")
	}
	if e, ok := err.(*Error); !ok || e.Kind != CorruptHeader {
		t.Fatalf("got %v, want *Error{Kind: CorruptHeader}", err)
	}
}

func TestDecompressRejectsExhaustedPayload(t *testing.T) {
	container, err := Compress([]byte("abracadabra"), ".txt")
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	c := parseContainer(container)
	if len(c.payload) < 2 {
		t.Fatalf("payload too short to exercise this case: %d bytes", len(c.payload))
	}
	// Drop interior data bytes but keep the trailing padding-count byte as
	// originally written, so it stays a valid trailer (<=7) and the
	// resulting payload fails by running out of bits mid-decode rather than
	// by carrying a bad padding count.
	trailer := c.payload[len(c.payload)-1]
	data := c.payload[:len(c.payload)-1]
	truncatedPayload := append(append([]byte(nil), data[:len(data)/2]...), trailer)
	bad := writeContainer(c.ext, c.freqs, c.originalSize, c.primaryIndex, truncatedPayload)
	_, _, err = Decompress(bad)
	if err == nil {
		t.Fatal("expected error for exhausted payload")
	}
	if e, ok := err.(*Error); !ok || e.Kind != CorruptPayload {
		t.Fatalf("got %v, want *Error{Kind: CorruptPayload}", err)
	}
}
