// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package riff

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// FourCC is a 4 byte ASCII chunk tag.
type FourCC [4]byte

var (
	RIFF = FourCC{'R', 'I', 'F', 'F'}
	LIST = FourCC{'L', 'I', 'S', 'T'}
)

// HdrSize is the size of a chunk header: tag then little endian size.
const HdrSize = 8

func (f FourCC) String() string {
	return string(f[:])
}

// IsList reports whether chunks tagged f carry a form type followed by
// sub-chunks.
func (f FourCC) IsList() bool {
	return f == RIFF || f == LIST
}

// Chunk locates one chunk in a buffer.  Offset is the position of the
// payload, immediately after the header.
type Chunk struct {
	ID     FourCC
	Size   uint32
	Offset int
}

// End returns the offset just past the payload, excluding any pad byte.
func (c Chunk) End() int {
	return c.Offset + int(c.Size)
}

// Payload returns the chunk payload as a view into buf.
func (c Chunk) Payload(buf []byte) []byte {
	return buf[c.Offset:c.End()]
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s[%d@%d]", c.ID, c.Size, c.Offset)
}

// ErrTruncated is matched by errors for chunks whose declared size
// reads past the range being tokenized.
var ErrTruncated = errors.New("truncated chunk")

// TruncatedError gives the details of a truncated chunk.
type TruncatedError struct {
	ID     FourCC
	At     int // offset of the chunk header
	Size   uint32
	Remain int // bytes available after the header
}

func (e *TruncatedError) Error() string {
	if e.Remain < 0 {
		return fmt.Sprintf("truncated chunk header at %d", e.At)
	}
	return fmt.Sprintf("truncated chunk '%s' at %d: size %d, %d bytes left", e.ID, e.At, e.Size, e.Remain)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// Chunks tokenizes buf[start:start+length] into consecutive chunks.  If a
// chunk size is odd, a pad byte follows its payload.  Chunk payloads are
// not interpreted: list chunks are returned as single chunks.
func Chunks(buf []byte, start, length int) ([]Chunk, error) {
	end := start + length
	if start < 0 || length < 0 || end > len(buf) {
		return nil, &TruncatedError{At: start, Remain: -1}
	}
	var res []Chunk
	off := start
	for off < end {
		if end-off < HdrSize {
			return nil, &TruncatedError{At: off, Remain: -1}
		}
		c := Chunk{Offset: off + HdrSize}
		copy(c.ID[:], buf[off:off+4])
		c.Size = binary.LittleEndian.Uint32(buf[off+4 : off+8])
		if int64(c.Size) > int64(end-c.Offset) {
			return nil, &TruncatedError{ID: c.ID, At: off, Size: c.Size, Remain: end - c.Offset}
		}
		res = append(res, c)
		off = c.End()
		if c.Size&1 == 1 {
			// the pad byte of the last chunk in a range is commonly dropped.
			off++
		}
	}
	return res, nil
}

// ErrNotList is returned by List for chunks which can't hold sub-chunks.
var ErrNotList = errors.New("not a list chunk")

// Form returns the 4 byte form type at the start of the list chunk c.
func Form(buf []byte, c Chunk) (FourCC, error) {
	var form FourCC
	if !c.ID.IsList() {
		return form, fmt.Errorf("%s: %w", c.ID, ErrNotList)
	}
	if c.Size < 4 {
		return form, &TruncatedError{ID: c.ID, At: c.Offset - HdrSize, Size: c.Size, Remain: int(c.Size)}
	}
	copy(form[:], buf[c.Offset:c.Offset+4])
	return form, nil
}

// List reads the form type of the list chunk c and tokenizes the
// sub-chunks which follow it.
func List(buf []byte, c Chunk) (FourCC, []Chunk, error) {
	form, err := Form(buf, c)
	if err != nil {
		return form, nil, err
	}
	children, err := Chunks(buf, c.Offset+4, int(c.Size)-4)
	if err != nil {
		return form, nil, err
	}
	return form, children, nil
}
