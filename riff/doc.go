// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package riff tokenizes in-memory RIFF data into chunks.
//
// Package riff does not interpret nesting; callers use List on chunks whose
// payload holds sub-chunks.
package riff /* import "zikichombo.org/sf2/riff" */
