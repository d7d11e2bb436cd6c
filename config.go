// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config holds decoding policy.  The zero value decodes according to
// the SF2 format.
type Config struct {
	// ReleaseVolEnvTerminates makes a releaseVolEnv generator end an
	// instrument zone's generator scan, as sampleID does, without giving
	// the zone a sample.  Some banks in the wild appear to rely on this.
	ReleaseVolEnvTerminates bool

	// BoundZones stops each zone's generator scan at the first generator
	// of the following zone.  Without it a global zone reads on until a
	// terminal generator or the end of the table.
	BoundZones bool

	// Log receives debug and warning output.  Nil means silent.
	Log logrus.FieldLogger
}

var silent = func() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}()

func (c *Config) logger() logrus.FieldLogger {
	if c == nil || c.Log == nil {
		return silent
	}
	return c.Log
}
