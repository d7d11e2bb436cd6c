// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"encoding/binary"
	"fmt"
)

// Operation is a generator opcode (SFGenerator).
type Operation uint16

const (
	StartAddrsOffset Operation = iota
	EndAddrsOffset
	StartloopAddrsOffset
	EndloopAddrsOffset
	StartAddrsCoarseOffset
	ModLfoToPitch
	VibLfoToPitch
	ModEnvToPitch
	InitialFilterFc
	InitialFilterQ
	ModLfoToFilterFc
	ModEnvToFilterFc
	EndAddrsCoarseOffset
	ModLfoToVolume
	Unused1
	ChorusEffectsSend
	ReverbEffectsSend
	Pan
	Unused2
	Unused3
	Unused4
	DelayModLFO
	FreqModLFO
	DelayVibLFO
	FreqVibLFO
	DelayModEnv
	AttackModEnv
	HoldModEnv
	DecayModEnv
	SustainModEnv
	ReleaseModEnv
	KeynumToModEnvHold
	KeynumToModEnvDecay
	DelayVolEnv
	AttackVolEnv
	HoldVolEnv
	DecayVolEnv
	SustainVolEnv
	ReleaseVolEnv
	KeynumToVolEnvHold
	KeynumToVolEnvDecay
	InstrumentOp
	Reserved1
	KeyRange
	VelRange
	StartloopAddrsCoarseOffset
	Keynum
	Velocity
	InitialAttenuation
	Reserved2
	EndloopAddrsCoarseOffset
	CoarseTune
	FineTune
	SampleID
	SampleModes
	Reserved3
	ScaleTuning
	ExclusiveClass
	OverridingRootKey
	Unused5
	EndOper
)

type opInfo struct {
	name string
	desc string
}

// opTable is indexed by Operation.
var opTable = [...]opInfo{
	{"startAddrsOffset", "offset in sample points from the sample start to the first point played"},
	{"endAddrsOffset", "offset in sample points from the sample end to the last point played"},
	{"startloopAddrsOffset", "offset in sample points applied to the sample loop start"},
	{"endloopAddrsOffset", "offset in sample points applied to the sample loop end"},
	{"startAddrsCoarseOffset", "start offset in 32768 sample point increments"},
	{"modLfoToPitch", "pitch excursion in cents for a full scale modulation LFO"},
	{"vibLfoToPitch", "pitch excursion in cents for a full scale vibrato LFO"},
	{"modEnvToPitch", "pitch excursion in cents at the modulation envelope peak"},
	{"initialFilterFc", "filter cutoff in absolute cents"},
	{"initialFilterQ", "filter resonance in centibels above DC gain"},
	{"modLfoToFilterFc", "cutoff excursion in cents for a full scale modulation LFO"},
	{"modEnvToFilterFc", "cutoff excursion in cents at the modulation envelope peak"},
	{"endAddrsCoarseOffset", "end offset in 32768 sample point increments"},
	{"modLfoToVolume", "volume excursion in centibels for a full scale modulation LFO"},
	{"unused1", "unused, reserved"},
	{"chorusEffectsSend", "chorus send in 0.1% units"},
	{"reverbEffectsSend", "reverb send in 0.1% units"},
	{"pan", "dry output position in 0.1% units, -500 left to 500 right"},
	{"unused2", "unused, reserved"},
	{"unused3", "unused, reserved"},
	{"unused4", "unused, reserved"},
	{"delayModLFO", "modulation LFO delay in absolute timecents"},
	{"freqModLFO", "modulation LFO frequency in absolute cents"},
	{"delayVibLFO", "vibrato LFO delay in absolute timecents"},
	{"freqVibLFO", "vibrato LFO frequency in absolute cents"},
	{"delayModEnv", "modulation envelope delay in absolute timecents"},
	{"attackModEnv", "modulation envelope attack in absolute timecents"},
	{"holdModEnv", "modulation envelope hold in absolute timecents"},
	{"decayModEnv", "modulation envelope decay in absolute timecents"},
	{"sustainModEnv", "modulation envelope sustain decrease in 0.1% units"},
	{"releaseModEnv", "modulation envelope release in absolute timecents"},
	{"keynumToModEnvHold", "modulation envelope hold change in timecents per key number"},
	{"keynumToModEnvDecay", "modulation envelope decay change in timecents per key number"},
	{"delayVolEnv", "volume envelope delay in absolute timecents"},
	{"attackVolEnv", "volume envelope attack in absolute timecents"},
	{"holdVolEnv", "volume envelope hold in absolute timecents"},
	{"decayVolEnv", "volume envelope decay in absolute timecents"},
	{"sustainVolEnv", "volume envelope sustain attenuation in centibels"},
	{"releaseVolEnv", "volume envelope release in absolute timecents"},
	{"keynumToVolEnvHold", "volume envelope hold change in timecents per key number"},
	{"keynumToVolEnvDecay", "volume envelope decay change in timecents per key number"},
	{"instrument", "index of the instrument played by a preset zone; terminal generator of a preset zone"},
	{"reserved1", "unused, reserved"},
	{"keyRange", "lowest and highest MIDI key of the zone"},
	{"velRange", "lowest and highest MIDI velocity of the zone"},
	{"startloopAddrsCoarseOffset", "loop start offset in 32768 sample point increments"},
	{"keynum", "forces the MIDI key number"},
	{"velocity", "forces the MIDI velocity"},
	{"initialAttenuation", "attenuation in centibels"},
	{"reserved2", "unused, reserved"},
	{"endloopAddrsCoarseOffset", "loop end offset in 32768 sample point increments"},
	{"coarseTune", "pitch offset in semitones"},
	{"fineTune", "pitch offset in cents"},
	{"sampleID", "index of the sample played by an instrument zone; terminal generator of an instrument zone"},
	{"sampleModes", "loop mode: 0 none, 1 continuous, 3 until key release"},
	{"reserved3", "unused, reserved"},
	{"scaleTuning", "pitch change in cents per key number"},
	{"exclusiveClass", "voices with the same non-zero class within a preset cut each other off"},
	{"overridingRootKey", "MIDI key overriding the sample's original pitch"},
	{"unused5", "unused, reserved"},
	{"endOper", "unused, marks the end of the opcode range"},
}

// String returns the SF2 name of the operation, or "Unknown".
func (o Operation) String() string {
	if int(o) < len(opTable) {
		return opTable[o].name
	}
	return "Unknown"
}

// Description returns a short description of the operation's amount.
func (o Operation) Description() string {
	if int(o) < len(opTable) {
		return opTable[o].desc
	}
	return "Unknown"
}

// IsRange reports whether the amount of o is a low/high byte pair.
func (o Operation) IsRange() bool {
	return o == KeyRange || o == VelRange
}

// Amount is the 2 byte amount of a generator or modulator, either an
// Int16Amount or a RangeAmount depending on the operation.
type Amount interface {
	// Raw returns the amount's bytes as a little endian word.
	Raw() uint16
	fmt.Stringer
}

// Int16Amount is the signed form of an Amount.
type Int16Amount int16

func (a Int16Amount) Raw() uint16 { return uint16(a) }

func (a Int16Amount) String() string { return fmt.Sprintf("%d", int16(a)) }

// RangeAmount is the low/high byte form of an Amount, used by keyRange
// and velRange.
type RangeAmount struct {
	Lo, Hi uint8
}

func (a RangeAmount) Raw() uint16 { return uint16(a.Lo) | uint16(a.Hi)<<8 }

func (a RangeAmount) String() string { return fmt.Sprintf("%d-%d", a.Lo, a.Hi) }

func makeAmount(op Operation, b []byte) Amount {
	if op.IsRange() {
		return RangeAmount{Lo: b[0], Hi: b[1]}
	}
	return Int16Amount(int16(binary.LittleEndian.Uint16(b)))
}

// Generator is an opcode and amount pair parameterizing a zone.
type Generator struct {
	Op     Operation
	Amount Amount
}

// Int returns the signed amount, with ok false for range generators.
func (g Generator) Int() (v int16, ok bool) {
	a, ok := g.Amount.(Int16Amount)
	return int16(a), ok
}

// Range returns the low/high amount, with ok false unless g is a
// keyRange or velRange generator.
func (g Generator) Range() (r RangeAmount, ok bool) {
	r, ok = g.Amount.(RangeAmount)
	return
}

func (g Generator) String() string {
	return fmt.Sprintf("%s=%s", g.Op, g.Amount)
}

const genSize = 4

func decodeGenerator(b []byte) Generator {
	op := Operation(binary.LittleEndian.Uint16(b[:2]))
	return Generator{Op: op, Amount: makeAmount(op, b[2:4])}
}

// Modulator is a decoded modulator record.  The source, amount source
// and transform fields are kept as raw bits.
type Modulator struct {
	Src       uint16
	Dest      Operation
	Amount    Amount
	AmountSrc uint16
	Transform uint16
}

const modSize = 10

func decodeModulator(b []byte) Modulator {
	dest := Operation(binary.LittleEndian.Uint16(b[2:4]))
	return Modulator{
		Src:       binary.LittleEndian.Uint16(b[0:2]),
		Dest:      dest,
		Amount:    makeAmount(dest, b[4:6]),
		AmountSrc: binary.LittleEndian.Uint16(b[6:8]),
		Transform: binary.LittleEndian.Uint16(b[8:10])}
}
