// Copyright 2026, The rsk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rsk

// moveToFront implements the move-to-front transform over the full 256-byte
// alphabet. It mirrors the reverse-lookup loop in the teacher's
// bzip2/mtf_rle2.go moveToFront type, but without that type's RLE2
// augmentation: this container format has no field for run-length-encoded
// zero runs, so the MTF stage here is the plain transform spec.md describes
// in 4.2.
type moveToFront struct {
	list [256]byte
}

// init resets the list to the identity ordering [0, 1, ..., 255].
func (m *moveToFront) init() {
	for i := range m.list {
		m.list[i] = byte(i)
	}
}

// encode runs the forward MTF transform: each output byte is the position
// of the corresponding input byte in the evolving list, before that byte is
// moved to the front.
func (m *moveToFront) encode(vals []byte) []byte {
	m.init()
	out := make([]byte, len(vals))
	for n, val := range vals {
		idx := 0
		for i, v := range m.list {
			if v == val {
				idx = i
				break
			}
		}
		copy(m.list[1:idx+1], m.list[:idx])
		m.list[0] = val
		out[n] = byte(idx)
	}
	return out
}

// decode runs the inverse MTF transform: each output byte is read out of
// the list at the given index, before that byte is moved to the front.
func (m *moveToFront) decode(idxs []byte) []byte {
	m.init()
	out := make([]byte, len(idxs))
	for n, idx := range idxs {
		val := m.list[idx]
		copy(m.list[1:int(idx)+1], m.list[:idx])
		m.list[0] = val
		out[n] = val
	}
	return out
}
