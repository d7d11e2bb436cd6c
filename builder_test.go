// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"encoding/binary"
)

type tGen struct {
	op  Operation
	amt uint16
}

func gen(op Operation, amt int) tGen {
	return tGen{op: op, amt: uint16(int16(amt))}
}

func rng(op Operation, lo, hi uint8) tGen {
	return tGen{op: op, amt: uint16(lo) | uint16(hi)<<8}
}

type tMod struct {
	src, dest, amt, amtSrc, trans uint16
}

type tZone struct {
	gens []tGen
	mods []tMod
}

type tPreset struct {
	name         string
	preset, bank int
	zones        []tZone
}

type tInst struct {
	name  string
	zones []tZone
}

type tSample struct {
	name                           string
	start, end, startLoop, endLoop uint32
	rate                           uint32
	pitch                          uint8
	corr                           int8
	link, typ                      uint16
}

// bank describes a synthetic SoundFont for tests.
type bank struct {
	name    string
	presets []tPreset
	insts   []tInst
	samples []tSample
	pcm     []int16
}

// payloads holds the chunk payloads of a bank, to be corrupted by tests
// before assembly.
type payloads struct {
	form  string
	info  [][]byte // complete sub-chunks
	sdta  [][]byte // complete sub-chunks
	hydra [9][]byte
	tags  [9]string
}

func chunk(id string, payload []byte) []byte {
	b := make([]byte, 8, 8+len(payload)+1)
	copy(b, id)
	binary.LittleEndian.PutUint32(b[4:], uint32(len(payload)))
	b = append(b, payload...)
	if len(payload)%2 == 1 {
		b = append(b, 0)
	}
	return b
}

func list(id, form string, kids ...[]byte) []byte {
	p := []byte(form)
	for _, k := range kids {
		p = append(p, k...)
	}
	return chunk(id, p)
}

func name20(n string) []byte {
	b := make([]byte, 20)
	copy(b, n)
	return b
}

func u16(b []byte, v int) []byte {
	return binary.LittleEndian.AppendUint16(b, uint16(v))
}

func u32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// zoneTables returns the bag, mod and gen payloads for zones, each
// with its terminal record.
func zoneTables(zones []tZone) (bags, mods, gens []byte) {
	nGen, nMod := 0, 0
	for _, z := range zones {
		bags = u16(bags, nGen)
		bags = u16(bags, nMod)
		for _, g := range z.gens {
			gens = u16(gens, int(g.op))
			gens = u16(gens, int(g.amt))
		}
		for _, m := range z.mods {
			for _, v := range []uint16{m.src, m.dest, m.amt, m.amtSrc, m.trans} {
				mods = u16(mods, int(v))
			}
		}
		nGen += len(z.gens)
		nMod += len(z.mods)
	}
	bags = u16(bags, nGen)
	bags = u16(bags, nMod)
	mods = append(mods, make([]byte, modSize)...)
	gens = append(gens, make([]byte, genSize)...)
	return
}

func (b *bank) payloads() *payloads {
	p := &payloads{
		form: "sfbk",
		tags: [9]string{"phdr", "pbag", "pmod", "pgen", "inst", "ibag", "imod", "igen", "shdr"}}

	p.info = [][]byte{
		chunk("ifil", []byte{2, 0, 1, 0}),
		chunk("isng", []byte("EMU8000\x00")),
		chunk("INAM", append([]byte(b.name), 0))}

	var smpl []byte
	for _, v := range b.pcm {
		smpl = u16(smpl, int(uint16(v)))
	}
	p.sdta = [][]byte{chunk("smpl", smpl)}

	var pzones []tZone
	var phdr []byte
	for _, pr := range b.presets {
		phdr = append(phdr, name20(pr.name)...)
		phdr = u16(phdr, pr.preset)
		phdr = u16(phdr, pr.bank)
		phdr = u16(phdr, len(pzones))
		phdr = append(phdr, make([]byte, 12)...)
		pzones = append(pzones, pr.zones...)
	}
	phdr = append(phdr, name20("EOP")...)
	phdr = append(phdr, make([]byte, 4)...)
	phdr = u16(phdr, len(pzones))
	phdr = append(phdr, make([]byte, 12)...)
	p.hydra[0] = phdr
	p.hydra[1], p.hydra[2], p.hydra[3] = zoneTables(pzones)

	var izones []tZone
	var inst []byte
	for _, in := range b.insts {
		inst = append(inst, name20(in.name)...)
		inst = u16(inst, len(izones))
		izones = append(izones, in.zones...)
	}
	inst = append(inst, name20("EOI")...)
	inst = u16(inst, len(izones))
	p.hydra[4] = inst
	p.hydra[5], p.hydra[6], p.hydra[7] = zoneTables(izones)

	var shdr []byte
	for _, s := range b.samples {
		shdr = append(shdr, name20(s.name)...)
		for _, v := range []uint32{s.start, s.end, s.startLoop, s.endLoop, s.rate} {
			shdr = u32(shdr, v)
		}
		shdr = append(shdr, s.pitch, byte(s.corr))
		shdr = u16(shdr, int(s.link))
		shdr = u16(shdr, int(s.typ))
	}
	shdr = append(shdr, name20("EOS")...)
	shdr = append(shdr, make([]byte, 26)...)
	p.hydra[8] = shdr
	return p
}

func (p *payloads) pdta() [][]byte {
	kids := make([][]byte, 0, 9)
	for i := range p.hydra {
		if p.tags[i] == "" {
			continue
		}
		kids = append(kids, chunk(p.tags[i], p.hydra[i]))
	}
	return kids
}

func (p *payloads) bytes() []byte {
	return list("RIFF", p.form,
		list("LIST", "INFO", p.info...),
		list("LIST", "sdta", p.sdta...),
		list("LIST", "pdta", p.pdta()...))
}

func (b *bank) bytes() []byte {
	return b.payloads().bytes()
}

// minimalBank has one preset playing one instrument playing one sample
// of 4 points with loop [1,3).
func minimalBank() *bank {
	return &bank{
		name: "minimal",
		presets: []tPreset{{
			name:  "Piano",
			zones: []tZone{{gens: []tGen{gen(InstrumentOp, 0)}}}}},
		insts: []tInst{{
			name:  "Piano Inst",
			zones: []tZone{{gens: []tGen{gen(SampleID, 0)}}}}},
		samples: []tSample{{
			name: "C4", start: 0, end: 4, startLoop: 1, endLoop: 3,
			rate: 22050, pitch: 60, corr: -3, typ: uint16(MonoSample)}},
		pcm: []int16{100, -200, 300, -400}}
}

// richBank has several presets and instruments, global zones, modulators
// and samples cut from a shared blob padded with zeros.
func richBank() *bank {
	pcm := make([]int16, 0, 256)
	for i := 0; i < 10; i++ {
		pcm = append(pcm, int16(i+1))
	}
	pcm = append(pcm, make([]int16, 46)...)
	for i := 0; i < 6; i++ {
		pcm = append(pcm, int16(-(i + 1)))
	}
	pcm = append(pcm, make([]int16, 46)...)
	return &bank{
		name: "rich",
		presets: []tPreset{
			{name: "Lead", preset: 1, zones: []tZone{
				{gens: []tGen{rng(KeyRange, 0, 63), gen(InstrumentOp, 0)}},
				{gens: []tGen{rng(KeyRange, 64, 127), gen(Pan, -250), gen(InstrumentOp, 1)}},
			}},
			{name: "Empty", preset: 2, bank: 1},
			{name: "Pad", preset: 3, bank: 128, zones: []tZone{
				{gens: []tGen{gen(CoarseTune, -12), gen(InstrumentOp, 1)},
					mods: []tMod{{src: 0x0502, dest: uint16(InitialAttenuation), amt: 960, amtSrc: 0, trans: 0}}},
			}},
		},
		insts: []tInst{
			{name: "Saw", zones: []tZone{
				{gens: []tGen{rng(VelRange, 1, 127), gen(SampleModes, 1), gen(SampleID, 0)}},
			}},
			{name: "Square", zones: []tZone{
				{gens: []tGen{gen(SampleID, 1)}},
				{gens: []tGen{gen(ReleaseVolEnv, 1200), gen(SampleID, 0)}},
			}},
			{name: "Global", zones: []tZone{
				{gens: []tGen{gen(Pan, 100), gen(ReverbEffectsSend, 200)},
					mods: []tMod{{src: 0x0081, dest: uint16(KeyRange), amt: 0x4010, amtSrc: 7, trans: 2}}},
			}},
		},
		samples: []tSample{
			{name: "saw", start: 0, end: 10, startLoop: 2, endLoop: 8, rate: 44100, pitch: 69, typ: uint16(MonoSample)},
			{name: "square", start: 56, end: 62, startLoop: 56, endLoop: 62, rate: 32000, pitch: 60, corr: 5, typ: uint16(RomLeftSample)},
		},
		pcm: pcm}
}
