// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command sf2dump prints the presets, instruments and samples of SoundFont
// files and optionally extracts samples as wav files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/sirupsen/logrus"
	"zikichombo.org/sound/sample"

	"zikichombo.org/sf2"
	"zikichombo.org/sf2/wav"
)

var (
	cpuprof   = flag.String("cpuprof", "", "cpu profile")
	extract   = flag.String("x", "", "extract samples as wav files into `dir`")
	only      = flag.Int("sample", -1, "with -x, extract only the sample with this index")
	relVolEnv = flag.Bool("relvolenv", false, "end instrument zones at releaseVolEnv generators")
	bound     = flag.Bool("bound", false, "bound zone generator scans by the following bag")
	verbose   = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()
	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *cpuprof != "" {
		f, e := os.Create(*cpuprof)
		if e != nil {
			log.Fatal(e)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	cfg := &sf2.Config{
		ReleaseVolEnvTerminates: *relVolEnv,
		BoundZones:              *bound,
		Log:                     log}
	out := bufio.NewWriter(os.Stdout)
	for _, fn := range flag.Args() {
		flog := log.WithField("file", fn)
		sf, err := sf2.LoadWith(fn, cfg)
		if err != nil {
			flog.Error(err)
			continue
		}
		dump(out, fn, sf)
		if *extract == "" {
			continue
		}
		if err := extractSamples(sf, *extract, *only, flog); err != nil {
			flog.Error(err)
		}
	}
	out.Flush()
}

func dump(w io.Writer, fn string, sf *sf2.SoundFont) {
	fmt.Fprintf(w, "%s: %q version %s\n", fn, sf.Info.Name, sf.Info.Version)
	for i := range sf.Presets {
		p := &sf.Presets[i]
		fmt.Fprintf(w, "preset %d %03d:%03d %q\n", i, p.Bank, p.Preset, p.Name)
		for j := range p.Zones {
			z := &p.Zones[j]
			ref := "global"
			if n, ok := z.InstrumentIndex(); ok {
				ref = fmt.Sprintf("instrument %d", n)
			}
			fmt.Fprintf(w, "\tzone %d %s %s\n", j, ref, generators(z.Generators))
		}
	}
	for i := range sf.Instruments {
		in := &sf.Instruments[i]
		fmt.Fprintf(w, "instrument %d %q\n", i, in.Name)
		for j := range in.Zones {
			z := &in.Zones[j]
			ref := "global"
			if n, ok := z.SampleIndex(); ok {
				ref = fmt.Sprintf("sample %d", n)
			}
			fmt.Fprintf(w, "\tzone %d %s %s\n", j, ref, generators(z.Generators))
		}
	}
	for i := range sf.Samples {
		s := &sf.Samples[i]
		fmt.Fprintf(w, "sample %d %q %s %dHz key %d%+dc loop [%d,%d) %d points %s\n",
			i, s.Name, s.Type, s.SampleRate, s.OriginalPitch, s.PitchCorrection,
			s.StartLoop, s.EndLoop, s.Points(), s.Duration())
	}
}

func generators(gs []sf2.Generator) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

func extractSamples(sf *sf2.SoundFont, dir string, only int, log logrus.FieldLogger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i := range sf.Samples {
		if only >= 0 && i != only {
			continue
		}
		s := &sf.Samples[i]
		if s.Type.ROM() {
			log.WithField("sample", i).Warn("skipping ROM sample")
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%03d_%s.wav", i, safeName(s.Name)))
		if err := wav.SavePCM(path, wav.NewFormatForm(s.Form(), sample.SInt16L), s.Data); err != nil {
			return err
		}
		log.WithField("path", path).Debug("extracted sample")
	}
	return nil
}

func safeName(n string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, n)
}
