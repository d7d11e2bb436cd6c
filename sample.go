// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"encoding/binary"

	"zikichombo.org/sf2/riff"
)

// SampleType is the sample link type of a sample header.  The zero
// SampleType means the header's type code was not recognized.
type SampleType uint16

const (
	MonoSample      SampleType = 1
	RightSample     SampleType = 2
	LeftSample      SampleType = 4
	LinkedSample    SampleType = 8
	RomMonoSample   SampleType = 0x8001
	RomRightSample  SampleType = 0x8002
	RomLeftSample   SampleType = 0x8004
	RomLinkedSample SampleType = 0x8008
)

const romBit = 0x8000

func parseSampleType(code uint16) (SampleType, bool) {
	switch t := SampleType(code); t {
	case MonoSample, RightSample, LeftSample, LinkedSample,
		RomMonoSample, RomRightSample, RomLeftSample, RomLinkedSample:
		return t, true
	}
	return 0, false
}

// ROM reports whether the sample data resides in a sound ROM rather
// than in the file.
func (t SampleType) ROM() bool {
	return t&romBit != 0
}

// Link returns t without its ROM flag.
func (t SampleType) Link() SampleType {
	return t &^ romBit
}

func (t SampleType) String() string {
	var s string
	switch t.Link() {
	case MonoSample:
		s = "mono"
	case RightSample:
		s = "right"
	case LeftSample:
		s = "left"
	case LinkedSample:
		s = "linked"
	default:
		return "unknown"
	}
	if t.ROM() {
		return "rom " + s
	}
	return s
}

// Sample is a decoded sample header together with its own copy of the
// sample's 16 bit little endian PCM data.
type Sample struct {
	Name string

	// Start and End are the header's absolute positions in the sample
	// blob, in sample points.
	Start uint32
	End   uint32

	// StartLoop and EndLoop are relative to Start.
	StartLoop int
	EndLoop   int

	SampleRate      uint32
	OriginalPitch   uint8 // MIDI key
	PitchCorrection int8  // cents
	SampleLink      uint16

	// Type is zero when TypeCode is not a known sample type.
	Type     SampleType
	TypeCode uint16

	Data []byte
}

// Points returns the number of sample points in s.Data.
func (s *Sample) Points() int {
	return len(s.Data) / 2
}

// decodeSamples decodes the shdr table, cutting the data of each sample
// out of the smpl payload.  Unknown sample types don't fail decoding and
// are returned as warnings.
func decodeSamples(buf []byte, c riff.Chunk, smpl riff.Chunk) ([]Sample, []error, error) {
	if err := checkTag(c, _shdr4Cc); err != nil {
		return nil, nil, err
	}
	if _, err := records(c, shdrSize, 1); err != nil {
		return nil, nil, err
	}
	blob := smpl.Payload(buf)
	var res []Sample
	var warnings []error
	end := c.End()
	// the terminal record is skipped by length.
	for off := c.Offset; end-off > shdrSize; off += shdrSize {
		i := len(res)
		r := buf[off : off+shdrSize]
		s := Sample{
			Name:            cString(r[:nameSize]),
			Start:           binary.LittleEndian.Uint32(r[20:24]),
			End:             binary.LittleEndian.Uint32(r[24:28]),
			SampleRate:      binary.LittleEndian.Uint32(r[36:40]),
			OriginalPitch:   r[40],
			PitchCorrection: int8(r[41]),
			SampleLink:      binary.LittleEndian.Uint16(r[42:44]),
			TypeCode:        binary.LittleEndian.Uint16(r[44:46])}
		startLoop := binary.LittleEndian.Uint32(r[28:32])
		endLoop := binary.LittleEndian.Uint32(r[32:36])
		s.StartLoop = int(int64(startLoop) - int64(s.Start))
		s.EndLoop = int(int64(endLoop) - int64(s.Start))

		if t, ok := parseSampleType(s.TypeCode); ok {
			s.Type = t
		} else {
			warnings = append(warnings, &UnknownSampleTypeError{Sample: i, Name: s.Name, Code: s.TypeCode})
		}

		lo, hi := int64(s.Start)*2, int64(s.End)*2
		if lo > hi || hi > int64(len(blob)) {
			idx := s.Start
			if lo <= hi {
				idx = s.End
			}
			return nil, nil, &IndexOutOfRangeError{
				Table:  c.ID.String(),
				Record: i,
				Field:  "sample point",
				Index:  int(idx),
				Limit:  len(blob) / 2}
		}
		s.Data = make([]byte, hi-lo)
		copy(s.Data, blob[lo:hi])
		res = append(res, s)
	}
	return res, warnings, nil
}
