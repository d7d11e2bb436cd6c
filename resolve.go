// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"zikichombo.org/sf2/riff"
)

// TerminalKind selects which generator ends the generator list of a
// zone and carries the zone's reference.
type TerminalKind int

const (
	// TerminalInstrument ends preset zones; the amount is an instrument index.
	TerminalInstrument TerminalKind = iota
	// TerminalSampleID ends instrument zones; the amount is a sample index.
	TerminalSampleID
)

func (k TerminalKind) String() string {
	switch k {
	case TerminalInstrument:
		return "instrument"
	case TerminalSampleID:
		return "sampleID"
	}
	return "unknown"
}

// ends reports whether op stops a zone's scan and whether its amount
// is the zone's reference.
func (k TerminalKind) ends(op Operation, cfg *Config) (stop, ref bool) {
	switch k {
	case TerminalInstrument:
		return op == InstrumentOp, op == InstrumentOp
	case TerminalSampleID:
		if op == SampleID {
			return true, true
		}
		if op == ReleaseVolEnv && cfg != nil && cfg.ReleaseVolEnvTerminates {
			return true, false
		}
	}
	return false, false
}

// Zone is the generator and modulator scope of one bag record.
type Zone struct {
	// GeneratorIndex and ModulatorIndex are the bag's indices into the
	// generator and modulator tables.
	GeneratorIndex int
	ModulatorIndex int

	Generators []Generator

	ref    int
	linked bool
	genEnd int // generator index of the following bag
}

// Global reports whether the zone has no instrument or sample reference,
// so that its generators apply to the whole owner.
func (z *Zone) Global() bool {
	return !z.linked
}

// PresetZone is a zone of a Preset.
type PresetZone struct {
	Zone
}

// InstrumentIndex returns the index into SoundFont.Instruments played by
// the zone, with ok false for global zones.
func (z *PresetZone) InstrumentIndex() (i int, ok bool) {
	return z.ref, z.linked
}

// InstrumentZone is a zone of an Instrument.
type InstrumentZone struct {
	Zone
}

// SampleIndex returns the index into SoundFont.Samples played by the
// zone, with ok false for global zones.
func (z *InstrumentZone) SampleIndex() (i int, ok bool) {
	return z.ref, z.linked
}

// resolveBags checks the size of the bag table against the terminal
// owner's first bag index and cuts it into the zones of each owner.
func resolveBags(buf []byte, c riff.Chunk, tag riff.FourCC, owners []span, terminal int) ([][]Zone, error) {
	if err := checkTag(c, tag); err != nil {
		return nil, err
	}
	if exp := terminal*bagSize + bagSize; int(c.Size) != exp {
		return nil, &SizeMismatchError{Chunk: c.ID, Actual: int(c.Size), Expected: exp}
	}
	p := c.Payload(buf)
	res := make([][]Zone, len(owners))
	for i, o := range owners {
		zs := make([]Zone, 0, o.end-o.first)
		for j := o.first; j < o.end; j++ {
			off := j * bagSize
			zs = append(zs, Zone{
				GeneratorIndex: word(p, off),
				ModulatorIndex: word(p, off+2),
				genEnd:         word(p, off+bagSize)})
		}
		res[i] = zs
	}
	return res, nil
}

// resolveGenerators fills in the generators of each zone by scanning
// gens from the zone's generator index up to and including the first
// generator of kind k.  A zone whose scan runs out of generators first
// is global.  firsts gives each owner's first bag index, for errors.
func resolveGenerators(gens []Generator, tag riff.FourCC, zones [][]Zone, firsts []int, k TerminalKind, cfg *Config) error {
	bound := cfg != nil && cfg.BoundZones
	for i := range zones {
		for j := range zones[i] {
			z := &zones[i][j]
			end := len(gens)
			if bound {
				end = z.genEnd
			}
			if z.GeneratorIndex > len(gens) {
				return genIndexError(tag, firsts[i]+j, z.GeneratorIndex, len(gens))
			}
			if end > len(gens) || end < z.GeneratorIndex {
				return genIndexError(tag, firsts[i]+j, end, len(gens))
			}
			for g := z.GeneratorIndex; g < end; g++ {
				gen := gens[g]
				z.Generators = append(z.Generators, gen)
				stop, ref := k.ends(gen.Op, cfg)
				if !stop {
					continue
				}
				if ref {
					v, _ := gen.Int()
					z.ref, z.linked = int(v), true
				}
				break
			}
		}
	}
	return nil
}

func genIndexError(tag riff.FourCC, record, index, limit int) error {
	return &IndexOutOfRangeError{
		Table:  tag.String(),
		Record: record,
		Field:  "generator index",
		Index:  index,
		Limit:  limit}
}

// checkRefs verifies that every linked zone refers to one of n targets.
func checkRefs(tag riff.FourCC, zones [][]Zone, firsts []int, field string, n int) error {
	for i := range zones {
		for j := range zones[i] {
			z := &zones[i][j]
			if z.linked && (z.ref < 0 || z.ref >= n) {
				return &IndexOutOfRangeError{
					Table:  tag.String(),
					Record: firsts[i] + j,
					Field:  field,
					Index:  z.ref,
					Limit:  n}
			}
		}
	}
	return nil
}
