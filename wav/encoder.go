// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"fmt"
	"io"
)

// HeaderSize is the size of everything WritePCM writes before the
// payload: RIFF header, format chunk and data chunk header.
const HeaderSize = hdrChunkSize + chunkHdrSize + fmtStartChunkSize + chunkHdrSize

// WritePCM writes a complete wav file holding pcm, which is already
// encoded (interleaved, little endian) according to f.
//
// Since the payload length is known, WritePCM needs no seeking and w may
// be any writer.
func WritePCM(w io.Writer, f *Format, pcm []byte) error {
	frame := f.Bytes() * f.Channels()
	if frame == 0 || len(pcm)%frame != 0 {
		return fmt.Errorf("pcm length %d not a multiple of frame size %d", len(pcm), frame)
	}
	h := &hdr{Length: uint32(HeaderSize - chunkHdrSize + padded(len(pcm)))}
	if e := h.Write(w); e != nil {
		return e
	}
	if e := f.Write(w); e != nil {
		return e
	}
	d := &chunk{fourCc: _dat4Cc, length: len(pcm)}
	if e := d.writeHdr(w); e != nil {
		return e
	}
	if _, e := w.Write(pcm); e != nil {
		return e
	}
	if padded(len(pcm)) != len(pcm) {
		if _, e := w.Write([]byte{0}); e != nil {
			return e
		}
	}
	return nil
}
