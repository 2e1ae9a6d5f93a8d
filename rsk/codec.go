// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rsk

// Compress runs the BWT -> MTF -> Huffman pipeline over input and returns a
// self-contained .rsk container carrying ext as the original file
// extension. input must be non-empty.
func Compress(input []byte, ext string) (container []byte, err error) {
	defer errRecover(&err)

	if len(input) == 0 {
		panicf(EmptyInput, "compress requires a non-empty input")
	}

	// Step 1: Burrows-Wheeler transform. encodeBWT mutates its argument in
	// place, so work on a private copy of the caller's bytes.
	last := append([]byte(nil), input...)
	ptr := encodeBWT(last)

	// Step 2: move-to-front transform.
	var mtf moveToFront
	mtfOut := mtf.encode(last)

	// Step 3: frequency tally.
	freqs := make(map[byte]uint64)
	for _, b := range mtfOut {
		freqs[b]++
	}

	// Single-symbol inputs take the degenerate path from 4.6: the encoder
	// still writes a container with a one-entry table, but emits no
	// payload bytes at all, since the decoder will reconstruct the
	// original_size copies of the lone symbol without touching it.
	if len(freqs) == 1 {
		return writeContainer(ext, freqs, uint32(len(mtfOut)), uint64(ptr), nil), nil
	}

	// Step 4-5: Huffman tree and code assignment.
	root := buildHuffmanTree(freqs)
	codes := assignCodes(root)

	// Step 6: bit-pack the MTF stream under the derived codes.
	bw := newBitWriter()
	for _, b := range mtfOut {
		bw.writeBits(codes[b].bits)
	}
	payload := bw.bytes()

	return writeContainer(ext, freqs, uint32(len(mtfOut)), uint64(ptr), payload), nil
}

// Decompress parses a .rsk container and runs the pipeline in reverse,
// returning the original file extension and contents.
func Decompress(container []byte) (ext string, data []byte, err error) {
	defer errRecover(&err)

	c := parseContainer(container)

	var mtfSyms []byte
	if len(c.freqs) == 1 {
		// 4.6 path (b): synthesize the MTF stream directly from the sole
		// symbol and original_size, skipping Huffman decode entirely.
		var sym byte
		for s := range c.freqs {
			sym = s
		}
		mtfSyms = make([]byte, c.originalSize)
		for i := range mtfSyms {
			mtfSyms[i] = sym
		}
	} else {
		root := buildHuffmanTree(c.freqs)
		mtfSyms = decodeHuffman(c.payload, root, int(c.originalSize))
	}

	var mtf moveToFront
	last := mtf.decode(mtfSyms)

	decodeBWT(last, int(c.primaryIndex))

	return c.ext, last, nil
}

// decodeHuffman walks root bit-by-bit, starting over at the root each time
// a leaf is reached, emitting symbols until n have been produced. Running
// out of bits before n symbols are emitted, or walking into a nil child,
// is a corrupt payload per 4.7.
func decodeHuffman(payload []byte, root *huffmanNode, n int) []byte {
	out := make([]byte, 0, n)
	br := newBitReader(payload)
	cur := root
	for len(out) < n {
		if cur == nil {
			panicf(CorruptPayload, "huffman decode walked into a nil child")
		}
		if cur.isLeaf {
			out = append(out, cur.sym)
			cur = root
			continue
		}
		bit, ok := br.readBit()
		if !ok {
			panicf(CorruptPayload, "huffman payload exhausted before producing %d symbols (got %d)", n, len(out))
		}
		if bit == 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return out
}
