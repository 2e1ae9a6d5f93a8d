// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rsk

import (
	"bytes"
	"encoding/binary"
)

// Container layout (little-endian, matching the reference widths in 6):
//
//	ext_len        u32
//	ext_bytes      ext_len bytes
//	table_size     u32
//	  symbol       u8      } repeated table_size times
//	  frequency    u64     }
//	original_size  u32
//	primary_index  u64
//	payload        variable
//	padding_bits   u8      (last byte)
//
// original_size is deliberately narrower than primary_index: this mismatch
// is a historical artifact of the format this spec was distilled from and
// is preserved here for wire compatibility rather than "fixed", per the
// Open Questions in the design notes.

const maxExtLen = 64
const maxTableSize = 256

// writeContainer serializes a compressed block. freqs must be non-empty
// with at most 256 entries; payload is either empty (the single-symbol
// case, see Compress) or already includes its trailing padding-count byte
// (see bitWriter.bytes).
func writeContainer(ext string, freqs map[byte]uint64, originalSize uint32, primaryIndex uint64, payload []byte) []byte {
	if len(ext) > maxExtLen {
		panicf(InvariantViolation, "extension %q exceeds %d bytes", ext, maxExtLen)
	}
	if len(freqs) == 0 || len(freqs) > maxTableSize {
		panicf(InvariantViolation, "frequency table size %d out of range [1,%d]", len(freqs), maxTableSize)
	}

	var buf bytes.Buffer
	buf.Grow(4 + len(ext) + 4 + len(freqs)*9 + 4 + 8 + len(payload))

	writeU32(&buf, uint32(len(ext)))
	buf.WriteString(ext)

	writeU32(&buf, uint32(len(freqs)))
	for sym := 0; sym < 256; sym++ {
		if freq, ok := freqs[byte(sym)]; ok {
			buf.WriteByte(byte(sym))
			writeU64(&buf, freq)
		}
	}

	writeU32(&buf, originalSize)
	writeU64(&buf, primaryIndex)
	buf.Write(payload)

	return buf.Bytes()
}

// parsedContainer holds the result of parseContainer.
type parsedContainer struct {
	ext          string
	freqs        map[byte]uint64
	originalSize uint32
	primaryIndex uint64
	payload      []byte
}

// parseContainer validates and decodes the header fields described in 6,
// panicking with CorruptHeader on any bound violation. The payload/trailer
// split itself is left to the Huffman decode stage (bitReader), since the
// decoder "identifies the payload/trailer split by reading to end-of-file"
// per 6 and this function does not know the payload's length in advance.
func parseContainer(data []byte) parsedContainer {
	r := &byteReader{buf: data}

	extLen := r.u32()
	if extLen > maxExtLen {
		panicf(CorruptHeader, "extension length %d exceeds %d", extLen, maxExtLen)
	}
	ext := string(r.bytes(int(extLen)))

	tableSize := r.u32()
	if tableSize == 0 || tableSize > maxTableSize {
		panicf(CorruptHeader, "frequency table size %d out of range [1,%d]", tableSize, maxTableSize)
	}
	freqs := make(map[byte]uint64, tableSize)
	var sum uint64
	for i := uint32(0); i < tableSize; i++ {
		sym := r.byte_()
		freq := r.u64()
		if freq == 0 {
			panicf(CorruptHeader, "symbol %d has zero frequency", sym)
		}
		if _, dup := freqs[sym]; dup {
			panicf(CorruptHeader, "duplicate symbol %d in frequency table", sym)
		}
		freqs[sym] = freq
		sum += freq
	}

	originalSize := r.u32()
	primaryIndex := r.u64()

	if sum != uint64(originalSize) {
		panicf(CorruptHeader, "frequency table sums to %d, want %d", sum, originalSize)
	}
	if originalSize == 0 {
		panicf(CorruptHeader, "original size must be >= 1")
	}
	if primaryIndex >= uint64(originalSize) {
		panicf(CorruptHeader, "primary index %d >= original size %d", primaryIndex, originalSize)
	}

	return parsedContainer{
		ext:          ext,
		freqs:        freqs,
		originalSize: originalSize,
		primaryIndex: primaryIndex,
		payload:      r.rest(),
	}
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	buf.Write(tmp[:])
}

// byteReader is a minimal sequential reader over a byte slice that panics
// with CorruptHeader on short reads, so that parseContainer can read the
// fixed-width header fields without threading an error return through
// every call.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) need(n int) {
	if len(r.buf)-r.pos < n {
		panicf(CorruptHeader, "container truncated: need %d more bytes at offset %d", n, r.pos)
	}
}

func (r *byteReader) u32() uint32 {
	r.need(4)
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

func (r *byteReader) u64() uint64 {
	r.need(8)
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

func (r *byteReader) byte_() byte {
	r.need(1)
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *byteReader) bytes(n int) []byte {
	r.need(n)
	v := r.buf[r.pos : r.pos+n]
	r.pos += n
	return v
}

func (r *byteReader) rest() []byte {
	return r.buf[r.pos:]
}
