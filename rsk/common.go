// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rsk implements the RSK lossless file container format.
//
// The format is a classic three-stage pipeline:
//
//	Burrows-Wheeler transform (BWT)
//	Move-to-front transform   (MTF)
//	Canonical Huffman coding  (Huffman)
//
// Compress runs the pipeline forward and binds the result to a
// self-describing container; Decompress parses the container and runs the
// pipeline in reverse. There is no streaming mode: a whole file is
// transformed in memory per call, and there is no concurrency, dictionary
// preload, or integrity checksum. See the package's accompanying design
// documentation for the on-disk layout.
package rsk

import (
	"fmt"
	"runtime"
)

// Kind identifies the class of error a Compress or Decompress call failed
// with. The zero Kind is never returned.
type Kind int

const (
	// InvariantViolation indicates an internal bug: some invariant that
	// must be guaranteed by construction was violated. It should never be
	// observed from valid or corrupt input alone.
	InvariantViolation Kind = iota + 1
	// EmptyInput indicates a zero-length compress input.
	EmptyInput
	// CorruptHeader indicates a bound check on the container header
	// failed, or sum(freqs) != original_size, or primary_index was out of
	// range.
	CorruptHeader
	// CorruptPayload indicates the Huffman payload ran out of bits before
	// producing original_size symbols, or decode walked into a nil child.
	CorruptPayload
)

func (k Kind) String() string {
	switch k {
	case InvariantViolation:
		return "invariant violation"
	case EmptyInput:
		return "empty input"
	case CorruptHeader:
		return "corrupt header"
	case CorruptPayload:
		return "corrupt payload"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by Compress and Decompress. Tests and
// callers that care about the failure class should use errors.As to recover
// it and inspect Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return "rsk: " + e.Kind.String() + ": " + e.Msg }

// errorf builds an *Error. It is used both to construct a returned error
// directly and as the payload of a panic that errRecover turns back into a
// returned error.
func errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// panicf aborts the current pipeline stage with an *Error. Recovered by
// errRecover at each exported entry point.
func panicf(kind Kind, format string, args ...interface{}) {
	panic(errorf(kind, format, args...))
}

// errRecover recovers a panic raised by panicf (or an internal runtime
// panic, which is re-raised since it indicates a real bug rather than a
// structured failure) and stores it in *err. Modeled on bzip2's own
// errRecover in common.go.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case *Error:
		*err = ex
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
