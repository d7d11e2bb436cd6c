// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"zikichombo.org/sound"
	"zikichombo.org/sound/freq"
	"zikichombo.org/sound/sample"
)

const _TAG_PCM = 1

// Format describes a format wav chunk (PCM only).
type Format struct {
	sample.Codec
	channels int
	freq     freq.T
}

func (f *Format) String() string {
	return fmt.Sprintf(`Samples: %s
Channels: %d
SampleRate: %s
`, f.Codec, f.channels, f.freq)
}

// Channels returns the number of channels in the data.
func (f *Format) Channels() int {
	return f.channels
}

// SampleRate returns the sample frequency in Hertz.
func (f *Format) SampleRate() freq.T {
	return f.freq
}

// NewFormat creates a new Format with chans channels at frequency freq
// using sample codec sc.
func NewFormat(chans int, freq freq.T, sc sample.Codec) *Format {
	return &Format{
		channels: chans,
		freq:     freq,
		Codec:    sc}
}

// NewFormatForm creates a new Format with the channels and frequency of v.
func NewFormatForm(v sound.Form, sc sample.Codec) *Format {
	return NewFormat(v.Channels(), v.SampleRate(), sc)
}

// NewPCM16Mono returns the format of mono 16 bit little endian data at
// rate samples per second, the layout of SoundFont sample data.
func NewPCM16Mono(rate uint32) *Format {
	return &Format{
		channels: 1,
		freq:     freq.T(rate) * freq.Hertz,
		Codec:    sample.SInt16L}
}

// The payload size of a PCM format chunk.
const fmtStartChunkSize = 2 + 2 + 4 + 4 + 2 + 2

func (f *Format) chunkSize() int {
	return chunkHdrSize + fmtStartChunkSize
}

// Write writes a wav format chunk to a writer, returning an error if there is an
// IO error or the codec can't be written as PCM.
func (f *Format) Write(w io.Writer) error {
	if f.Codec.IsFloat() {
		return fmt.Errorf("unsupported sample codec for PCM: %s", f.Codec)
	}
	buf := make([]byte, f.chunkSize())
	copy(buf[0:4], _fmt4Cc[:])
	freq := uint32(f.freq / freq.Hertz)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(fmtStartChunkSize))
	binary.LittleEndian.PutUint16(buf[8:10], uint16(_TAG_PCM))
	binary.LittleEndian.PutUint16(buf[10:12], uint16(f.channels))
	binary.LittleEndian.PutUint32(buf[12:16], freq)
	bpspc := f.Bytes()
	binary.LittleEndian.PutUint32(buf[16:20], freq*uint32(f.channels)*uint32(bpspc))
	binary.LittleEndian.PutUint16(buf[20:22], uint16(f.channels)*uint16(bpspc))
	binary.LittleEndian.PutUint16(buf[22:24], uint16(f.Bits()))
	n, e := w.Write(buf)
	if e != nil {
		return e
	}
	if n != len(buf) {
		return fmt.Errorf("couldn't write all of hdr %d/%d bytes", n, len(buf))
	}
	return nil
}
