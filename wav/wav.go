// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package wav

import (
	"bufio"
	"os"
)

// SavePCM writes pcm with format f to a wav file at path.
func SavePCM(path string, f *Format, pcm []byte) error {
	file, e := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if e != nil {
		return e
	}
	w := bufio.NewWriter(file)
	if e := WritePCM(w, f, pcm); e != nil {
		file.Close()
		return e
	}
	if e := w.Flush(); e != nil {
		file.Close()
		return e
	}
	return file.Close()
}
