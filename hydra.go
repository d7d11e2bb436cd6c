// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"bytes"
	"encoding/binary"

	"zikichombo.org/sf2/riff"
)

var (
	_phdr4Cc = riff.FourCC{'p', 'h', 'd', 'r'}
	_pbag4Cc = riff.FourCC{'p', 'b', 'a', 'g'}
	_pmod4Cc = riff.FourCC{'p', 'm', 'o', 'd'}
	_pgen4Cc = riff.FourCC{'p', 'g', 'e', 'n'}
	_inst4Cc = riff.FourCC{'i', 'n', 's', 't'}
	_ibag4Cc = riff.FourCC{'i', 'b', 'a', 'g'}
	_imod4Cc = riff.FourCC{'i', 'm', 'o', 'd'}
	_igen4Cc = riff.FourCC{'i', 'g', 'e', 'n'}
	_shdr4Cc = riff.FourCC{'s', 'h', 'd', 'r'}
)

// record widths
const (
	phdrSize = 38
	bagSize  = 4
	instSize = 22
	shdrSize = 46
	nameSize = 20
)

// Preset is a decoded preset header with its resolved zones.
type Preset struct {
	Name   string
	Preset int
	Bank   int

	Library    uint32
	Genre      uint32
	Morphology uint32

	// FirstBag and EndBag delimit the preset's zones in the pbag table as
	// the half open range [FirstBag, EndBag).
	FirstBag int
	EndBag   int

	Zones []PresetZone
}

// Instrument is a decoded instrument header with its resolved zones.
type Instrument struct {
	Name     string
	FirstBag int
	EndBag   int
	Zones    []InstrumentZone
}

// span is the bag range of an owner record.
type span struct {
	first, end int
}

func checkTag(c riff.Chunk, want riff.FourCC) error {
	if c.ID != want {
		return unexpected("pdta", want.String(), c.ID.String())
	}
	return nil
}

// records returns the number of width sized records in c, which must
// hold at least min of them.
func records(c riff.Chunk, width, min int) (int, error) {
	n := int(c.Size)
	if n%width != 0 {
		return 0, &SizeMismatchError{Chunk: c.ID, Actual: n, Expected: width, Multiple: true}
	}
	if n/width < min {
		return 0, &SizeMismatchError{Chunk: c.ID, Actual: n, Expected: min * width}
	}
	return n / width, nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

func word(b []byte, off int) int {
	return int(binary.LittleEndian.Uint16(b[off : off+2]))
}

// spans computes the bag range of each owner from the first bag index
// of its successor.  firsts includes the terminal record and must start
// at bag 0, so that the owners cover every bag before the terminal one.
func spans(tag riff.FourCC, firsts []int) ([]span, error) {
	if firsts[0] != 0 {
		return nil, &IndexOutOfRangeError{
			Table:  tag.String(),
			Record: 0,
			Field:  "bag index",
			Index:  firsts[0],
			Limit:  0}
	}
	res := make([]span, len(firsts)-1)
	for i := range res {
		res[i] = span{first: firsts[i], end: firsts[i+1]}
		if res[i].end < res[i].first {
			return nil, &IndexOutOfRangeError{
				Table:  tag.String(),
				Record: i + 1,
				Field:  "bag index",
				Index:  res[i].end,
				Limit:  res[i].first}
		}
	}
	return res, nil
}

// decodePresets decodes the phdr table.  The returned terminal is the
// first bag index of the terminal record.
func decodePresets(buf []byte, c riff.Chunk) ([]Preset, int, error) {
	if err := checkTag(c, _phdr4Cc); err != nil {
		return nil, 0, err
	}
	n, err := records(c, phdrSize, 1)
	if err != nil {
		return nil, 0, err
	}
	p := c.Payload(buf)
	firsts := make([]int, n)
	for i := range firsts {
		firsts[i] = word(p, i*phdrSize+24)
	}
	sp, err := spans(c.ID, firsts)
	if err != nil {
		return nil, 0, err
	}
	res := make([]Preset, n-1)
	for i := range res {
		r := p[i*phdrSize : (i+1)*phdrSize]
		res[i] = Preset{
			Name:       cString(r[:nameSize]),
			Preset:     word(r, 20),
			Bank:       word(r, 22),
			Library:    binary.LittleEndian.Uint32(r[26:30]),
			Genre:      binary.LittleEndian.Uint32(r[30:34]),
			Morphology: binary.LittleEndian.Uint32(r[34:38]),
			FirstBag:   sp[i].first,
			EndBag:     sp[i].end}
	}
	return res, firsts[n-1], nil
}

// decodeInstruments decodes the inst table, as decodePresets.
func decodeInstruments(buf []byte, c riff.Chunk) ([]Instrument, int, error) {
	if err := checkTag(c, _inst4Cc); err != nil {
		return nil, 0, err
	}
	n, err := records(c, instSize, 1)
	if err != nil {
		return nil, 0, err
	}
	p := c.Payload(buf)
	firsts := make([]int, n)
	for i := range firsts {
		firsts[i] = word(p, i*instSize+20)
	}
	sp, err := spans(c.ID, firsts)
	if err != nil {
		return nil, 0, err
	}
	res := make([]Instrument, n-1)
	for i := range res {
		r := p[i*instSize : (i+1)*instSize]
		res[i] = Instrument{
			Name:     cString(r[:nameSize]),
			FirstBag: sp[i].first,
			EndBag:   sp[i].end}
	}
	return res, firsts[n-1], nil
}

// decodeGenerators decodes a pgen or igen table, dropping the terminal
// record.
func decodeGenerators(buf []byte, c riff.Chunk, tag riff.FourCC) ([]Generator, error) {
	if err := checkTag(c, tag); err != nil {
		return nil, err
	}
	n, err := records(c, genSize, 0)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	p := c.Payload(buf)
	res := make([]Generator, n-1)
	for i := range res {
		res[i] = decodeGenerator(p[i*genSize : (i+1)*genSize])
	}
	return res, nil
}

// decodeModulators decodes a pmod or imod table, dropping the terminal
// record.
func decodeModulators(buf []byte, c riff.Chunk, tag riff.FourCC) ([]Modulator, error) {
	if err := checkTag(c, tag); err != nil {
		return nil, err
	}
	n, err := records(c, modSize, 0)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	p := c.Payload(buf)
	res := make([]Modulator, n-1)
	for i := range res {
		res[i] = decodeModulator(p[i*modSize : (i+1)*modSize])
	}
	return res, nil
}
