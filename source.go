// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/go-audio/audio"
	"zikichombo.org/sound"
	"zikichombo.org/sound/freq"
	"zikichombo.org/sound/sample"
)

// SF2 sample data is always mono 16 bit little endian.
const sampleCodec = sample.SInt16L

type form struct {
	rate freq.T
}

func (f form) Channels() int {
	return 1
}

func (f form) SampleRate() freq.T {
	return f.rate
}

// Form returns the sound form (mono, at the sample rate) of s.
func (s *Sample) Form() sound.Form {
	return form{rate: freq.T(s.SampleRate) * freq.Hertz}
}

// Duration returns the play time of s.Data at its sample rate.
func (s *Sample) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	return time.Duration(s.Points()) * s.Form().SampleRate().Period()
}

// Source returns a sound.Source reading s.Data.  Each source has its own
// read position; s.Data is not modified.
func (s *Sample) Source() sound.Source {
	return &pcmSource{form: form{rate: freq.T(s.SampleRate) * freq.Hertz}, data: s.Data}
}

// IntBuffer returns the sample points of s as a go-audio buffer.
func (s *Sample) IntBuffer() *audio.IntBuffer {
	d := make([]int, s.Points())
	for i := range d {
		d[i] = int(int16(binary.LittleEndian.Uint16(s.Data[2*i:])))
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(s.SampleRate)},
		Data:           d,
		SourceBitDepth: int(sampleCodec.Bits())}
}

type pcmSource struct {
	form
	data []byte
	p    int // byte offset
}

var _ sound.Source = (*pcmSource)(nil)

func (s *pcmSource) Codec() sample.Codec {
	return sampleCodec
}

func (s *pcmSource) Receive(dst []float64) (int, error) {
	bd := sampleCodec.Bytes()
	rem := (len(s.data) - s.p) / bd
	if rem == 0 {
		return 0, io.EOF
	}
	n := len(dst)
	if n > rem {
		n = rem
	}
	sampleCodec.Decode(dst[:n], s.data[s.p:s.p+n*bd])
	s.p += n * bd
	return n, nil
}

func (s *pcmSource) Close() error {
	return nil
}
