// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"encoding/binary"
	"io"
)

type fourCc [4]byte

var (
	_riff4Cc = fourCc{'R', 'I', 'F', 'F'}
	_wave4Cc = fourCc{'W', 'A', 'V', 'E'}
	_fmt4Cc  = fourCc{'f', 'm', 't', ' '}
	_dat4Cc  = fourCc{'d', 'a', 't', 'a'}
)

const chunkHdrSize = 8

type chunk struct {
	fourCc fourCc
	length int
}

func (c *chunk) writeHdr(w io.Writer) error {
	var buf [chunkHdrSize]byte
	copy(buf[:4], c.fourCc[:])
	binary.LittleEndian.PutUint32(buf[4:], uint32(c.length))
	_, err := w.Write(buf[:])
	return err
}

// padded returns the on disk size of a chunk payload of n bytes.
func padded(n int) int {
	return n + n&1
}
