// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rsk

import "container/heap"

// huffmanNode is a node of a Huffman tree. Internal nodes are distinguished
// from leaves with an explicit kind flag rather than a sentinel symbol
// value, per huffmanTree.h's minHeapNode.isLeaf: the reference C++ source
// has a second, deprecated variant that aliases an internal-node marker to
// byte 27, which corrupts any input containing that byte. The flag-based
// design here cannot alias a real symbol.
type huffmanNode struct {
	isLeaf      bool
	sym         byte
	freq        uint64
	left, right *huffmanNode
}

// nodeHeap is a container/heap priority queue ordered by ascending
// frequency, with insertion sequence as a tie-breaker so that two
// equal-frequency nodes are always extracted in the same relative order
// regardless of which process builds the heap. This is what lets an
// encoder and a decoder, given only the same frequency table, construct
// byte-identical trees (4.3's determinism requirement) without the codes
// themselves ever crossing the wire.
type nodeHeap struct {
	nodes   []*huffmanNode
	seqs    []uint64
	nextSeq uint64
}

func (h *nodeHeap) Len() int { return len(h.nodes) }

func (h *nodeHeap) Less(i, j int) bool {
	if h.nodes[i].freq != h.nodes[j].freq {
		return h.nodes[i].freq < h.nodes[j].freq
	}
	return h.seqs[i] < h.seqs[j]
}

func (h *nodeHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.seqs[i], h.seqs[j] = h.seqs[j], h.seqs[i]
}

func (h *nodeHeap) Push(x interface{}) {
	h.nodes = append(h.nodes, x.(*huffmanNode))
	h.seqs = append(h.seqs, h.nextSeq)
	h.nextSeq++
}

func (h *nodeHeap) Pop() interface{} {
	n := len(h.nodes)
	node := h.nodes[n-1]
	h.nodes = h.nodes[:n-1]
	h.seqs = h.seqs[:n-1]
	return node
}

// buildHuffmanTree constructs a Huffman tree from a frequency table. freqs
// must have at least one entry. Seeding iterates symbols in ascending
// order and pairwise-merges the two minimum-frequency nodes until one node
// remains, exactly as huffmanTree.cpp's buildHuffmanTree does with its
// std::priority_queue; container/heap stands in for std::priority_queue,
// matching how every Huffman implementation in the retrieval pack builds
// its tree (e.g. hpxro7-compressor-head/huffman.buildTree).
func buildHuffmanTree(freqs map[byte]uint64) *huffmanNode {
	if len(freqs) == 0 {
		panicf(InvariantViolation, "buildHuffmanTree called with empty frequency table")
	}

	h := &nodeHeap{}
	for sym := 0; sym < 256; sym++ {
		if freq, ok := freqs[byte(sym)]; ok {
			heap.Push(h, &huffmanNode{isLeaf: true, sym: byte(sym), freq: freq})
		}
	}

	for h.Len() > 1 {
		left := heap.Pop(h).(*huffmanNode)
		right := heap.Pop(h).(*huffmanNode)
		parent := &huffmanNode{freq: left.freq + right.freq, left: left, right: right}
		heap.Push(h, parent)
	}
	if h.Len() != 1 {
		panicf(InvariantViolation, "huffman heap did not converge to a single root")
	}
	return h.nodes[0]
}

// huffCode is a Huffman code: one entry per bit, root-to-leaf order, each
// either 0 or 1. A bit vector in place of the reference implementation's
// std::string of '0'/'1' characters, per the Design Notes' recommendation,
// and unbounded in length rather than packed into a fixed-width integer:
// a skewed, Fibonacci-like frequency distribution yields codes longer than
// 32 bits (up to 45 bits while the frequencies sum to less than 2^32, the
// bound set by the u32 original_size field), which does not fit in a
// uint32.
type huffCode struct {
	bits []byte
}

// assignCodes depth-first walks root, appending 0 on a left descent and 1
// on a right descent, and records the accumulated path at each leaf. A
// lone root leaf (no edges at all) is assigned the single-bit code 0,
// matching huffmanTree.cpp's saveCodes special case for str.empty().
func assignCodes(root *huffmanNode) map[byte]huffCode {
	codes := make(map[byte]huffCode)
	if root.isLeaf {
		codes[root.sym] = huffCode{bits: []byte{0}}
		return codes
	}
	var walk func(n *huffmanNode, path []byte)
	walk = func(n *huffmanNode, path []byte) {
		if n.isLeaf {
			// Copy: path's backing array is reused and overwritten as the
			// walk continues into sibling subtrees.
			codes[n.sym] = huffCode{bits: append([]byte(nil), path...)}
			return
		}
		walk(n.left, append(path, 0))
		walk(n.right, append(path, 1))
	}
	walk(root, nil)
	return codes
}
