// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"zikichombo.org/sf2/riff"
)

var (
	_sfbk4Cc = riff.FourCC{'s', 'f', 'b', 'k'}
	_info4Cc = riff.FourCC{'I', 'N', 'F', 'O'}
	_sdta4Cc = riff.FourCC{'s', 'd', 't', 'a'}
	_pdta4Cc = riff.FourCC{'p', 'd', 't', 'a'}
	_smpl4Cc = riff.FourCC{'s', 'm', 'p', 'l'}
)

// SoundFont is the decoded object graph of an SF2 file.
type SoundFont struct {
	Info        Info
	Presets     []Preset
	Instruments []Instrument
	Samples     []Sample

	// PresetModulators and InstrumentModulators are the pmod and imod
	// tables in file order.  Zones index into them by ModulatorIndex.
	PresetModulators     []Modulator
	InstrumentModulators []Modulator

	// Warnings holds the non-fatal problems found while decoding, such as
	// *UnknownSampleTypeError.
	Warnings []error
}

// Decode decodes an SF2 file held in buf.
func Decode(buf []byte) (*SoundFont, error) {
	return DecodeWith(buf, nil)
}

// DecodeWith decodes an SF2 file held in buf under the policy of cfg,
// which may be nil.
//
// Decoding is all or nothing: on error the returned SoundFont is nil.
// The result does not refer to buf.
func DecodeWith(buf []byte, cfg *Config) (*SoundFont, error) {
	log := cfg.logger()
	top, err := riff.Chunks(buf, 0, len(buf))
	if err != nil {
		return nil, err
	}
	if len(top) != 1 {
		return nil, unexpected("file", "1 chunk", fmt.Sprintf("%d chunks", len(top)))
	}
	if top[0].ID != riff.RIFF {
		return nil, unexpected("file", riff.RIFF.String(), top[0].ID.String())
	}
	form, err := riff.Form(buf, top[0])
	if err != nil {
		return nil, err
	}
	if form != _sfbk4Cc {
		return nil, unexpected("RIFF form", _sfbk4Cc.String(), form.String())
	}
	_, lists, err := riff.List(buf, top[0])
	if err != nil {
		return nil, err
	}
	if len(lists) != 3 {
		return nil, unexpected("RIFF sfbk", "3 chunks", fmt.Sprintf("%d chunks", len(lists)))
	}
	info, err := subChunks(buf, lists[0], _info4Cc)
	if err != nil {
		return nil, err
	}
	sdta, err := subChunks(buf, lists[1], _sdta4Cc)
	if err != nil {
		return nil, err
	}
	pdta, err := subChunks(buf, lists[2], _pdta4Cc)
	if err != nil {
		return nil, err
	}
	if len(sdta) != 1 {
		return nil, unexpected("sdta", "1 sub-chunk", fmt.Sprintf("%d sub-chunks", len(sdta)))
	}
	if sdta[0].ID != _smpl4Cc {
		return nil, unexpected("sdta", _smpl4Cc.String(), sdta[0].ID.String())
	}
	if len(pdta) != 9 {
		return nil, unexpected("pdta", "9 sub-chunks", fmt.Sprintf("%d sub-chunks", len(pdta)))
	}
	log.WithFields(logrus.Fields{
		"info": len(info),
		"smpl": sdta[0].Size,
	}).Debug("sf2 structure")

	sf := &SoundFont{Info: decodeInfo(buf, info, cfg)}
	if err := sf.decodeHydra(buf, pdta, sdta[0], cfg); err != nil {
		return nil, err
	}
	for _, w := range sf.Warnings {
		log.WithError(w).Warn("sf2 decode")
	}
	log.WithFields(logrus.Fields{
		"presets":     len(sf.Presets),
		"instruments": len(sf.Instruments),
		"samples":     len(sf.Samples),
	}).Debug("sf2 decoded")
	return sf, nil
}

// subChunks returns the sub-chunks of the LIST chunk c, which must have
// form type want.
func subChunks(buf []byte, c riff.Chunk, want riff.FourCC) ([]riff.Chunk, error) {
	if c.ID != riff.LIST {
		return nil, unexpected("RIFF sfbk", riff.LIST.String(), c.ID.String())
	}
	form, err := riff.Form(buf, c)
	if err != nil {
		return nil, err
	}
	if form != want {
		return nil, unexpected("LIST", want.String(), form.String())
	}
	_, res, err := riff.List(buf, c)
	return res, err
}

func (sf *SoundFont) decodeHydra(buf []byte, pdta []riff.Chunk, smpl riff.Chunk, cfg *Config) error {
	presets, pTerm, err := decodePresets(buf, pdta[0])
	if err != nil {
		return err
	}
	pSpans, pFirsts := presetSpans(presets)
	pZones, err := resolveBags(buf, pdta[1], _pbag4Cc, pSpans, pTerm)
	if err != nil {
		return err
	}
	if sf.PresetModulators, err = decodeModulators(buf, pdta[2], _pmod4Cc); err != nil {
		return err
	}
	pGens, err := decodeGenerators(buf, pdta[3], _pgen4Cc)
	if err != nil {
		return err
	}
	if err := resolveGenerators(pGens, _pbag4Cc, pZones, pFirsts, TerminalInstrument, cfg); err != nil {
		return err
	}

	insts, iTerm, err := decodeInstruments(buf, pdta[4])
	if err != nil {
		return err
	}
	iSpans, iFirsts := instrumentSpans(insts)
	iZones, err := resolveBags(buf, pdta[5], _ibag4Cc, iSpans, iTerm)
	if err != nil {
		return err
	}
	if sf.InstrumentModulators, err = decodeModulators(buf, pdta[6], _imod4Cc); err != nil {
		return err
	}
	iGens, err := decodeGenerators(buf, pdta[7], _igen4Cc)
	if err != nil {
		return err
	}
	if err := resolveGenerators(iGens, _ibag4Cc, iZones, iFirsts, TerminalSampleID, cfg); err != nil {
		return err
	}

	samples, warnings, err := decodeSamples(buf, pdta[8], smpl)
	if err != nil {
		return err
	}
	if err := checkRefs(_pbag4Cc, pZones, pFirsts, "instrument index", len(insts)); err != nil {
		return err
	}
	if err := checkRefs(_ibag4Cc, iZones, iFirsts, "sample index", len(samples)); err != nil {
		return err
	}

	for i := range presets {
		zs := make([]PresetZone, len(pZones[i]))
		for j := range zs {
			zs[j].Zone = pZones[i][j]
		}
		presets[i].Zones = zs
	}
	for i := range insts {
		zs := make([]InstrumentZone, len(iZones[i]))
		for j := range zs {
			zs[j].Zone = iZones[i][j]
		}
		insts[i].Zones = zs
	}
	sf.Presets = presets
	sf.Instruments = insts
	sf.Samples = samples
	sf.Warnings = warnings
	return nil
}

func presetSpans(ps []Preset) ([]span, []int) {
	sp := make([]span, len(ps))
	firsts := make([]int, len(ps))
	for i := range ps {
		sp[i] = span{first: ps[i].FirstBag, end: ps[i].EndBag}
		firsts[i] = ps[i].FirstBag
	}
	return sp, firsts
}

func instrumentSpans(is []Instrument) ([]span, []int) {
	sp := make([]span, len(is))
	firsts := make([]int, len(is))
	for i := range is {
		sp[i] = span{first: is[i].FirstBag, end: is[i].EndBag}
		firsts[i] = is[i].FirstBag
	}
	return sp, firsts
}

// Load reads and decodes the SF2 file at path.
func Load(path string) (*SoundFont, error) {
	return LoadWith(path, nil)
}

// LoadWith reads the SF2 file at path and decodes it with DecodeWith.
func LoadWith(path string, cfg *Config) (*SoundFont, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "sf2")
	}
	sf, err := DecodeWith(buf, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return sf, nil
}
