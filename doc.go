// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sf2 decodes SoundFont 2 files.
//
// Decoding turns a complete file held in memory into a SoundFont: presets
// refer to instruments and instruments refer to samples through zones,
// each zone carrying its generators.  Every sample carries its own copy of
// its 16 bit PCM data, so the result is independent of the input buffer.
//
// Package sf2 does not write SoundFont files, and does not support
// compressed (sm24, SF3) sample data.
package sf2 /* import "zikichombo.org/sf2" */
