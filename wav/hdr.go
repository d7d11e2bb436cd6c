// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Top level header of a WAV file
type hdr struct {
	Length uint32
}

const hdrChunkSize = 12

// Write writes the header (12 bytes), returning an error if the format is not correctly written.
func (h *hdr) Write(w io.Writer) error {
	var buf [hdrChunkSize]byte
	copy(buf[0:4], _riff4Cc[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.Length)
	copy(buf[8:12], _wave4Cc[:])
	n, e := w.Write(buf[:])
	if e != nil {
		return e
	}
	if n != hdrChunkSize {
		return fmt.Errorf("unable to write all of header (%d/12 bytes)", n)
	}
	return nil
}
