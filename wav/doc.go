// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package wav writes PCM sample data as wav audio files.
//
// Package wav only writes "PCM" data, which is not compressed, such as
// the 16 bit samples held by SoundFont files.
package wav /* import "zikichombo.org/sf2/wav" */
