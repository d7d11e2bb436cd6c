// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"fmt"

	"zikichombo.org/sf2/riff"
)

// Version is an SF2 version tag (ifil, iver).
type Version struct {
	Major, Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}

// Info holds the descriptive metadata of the INFO list.  Absent fields
// are zero.
type Info struct {
	Version    Version // ifil
	Engine     string  // isng
	Name       string  // INAM
	ROM        string  // irom
	ROMVersion Version // iver
	Created    string  // ICRD
	Engineers  string  // IENG
	Product    string  // IPRD
	Copyright  string  // ICOP
	Comments   string  // ICMT
	Software   string  // ISFT
}

func decodeVersion(p []byte) Version {
	if len(p) < 4 {
		return Version{}
	}
	return Version{Major: word(p, 0), Minor: word(p, 2)}
}

// decodeInfo fills an Info from the INFO sub-chunks.  Unrecognized
// sub-chunks are skipped.
func decodeInfo(buf []byte, chunks []riff.Chunk, cfg *Config) Info {
	var info Info
	log := cfg.logger()
	for _, c := range chunks {
		p := c.Payload(buf)
		switch c.ID.String() {
		case "ifil":
			info.Version = decodeVersion(p)
		case "iver":
			info.ROMVersion = decodeVersion(p)
		case "isng":
			info.Engine = cString(p)
		case "INAM":
			info.Name = cString(p)
		case "irom":
			info.ROM = cString(p)
		case "ICRD":
			info.Created = cString(p)
		case "IENG":
			info.Engineers = cString(p)
		case "IPRD":
			info.Product = cString(p)
		case "ICOP":
			info.Copyright = cString(p)
		case "ICMT":
			info.Comments = cString(p)
		case "ISFT":
			info.Software = cString(p)
		default:
			log.WithField("chunk", c.ID.String()).Debug("skipping INFO sub-chunk")
		}
	}
	return info
}
