// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sf2

import (
	"errors"
	"fmt"

	"zikichombo.org/sf2/riff"
)

var (
	// ErrStructuralMismatch is matched by errors for a wrong top level tag,
	// form type, list signature or child count.
	ErrStructuralMismatch = errors.New("sf2: structural mismatch")
	// ErrSizeMismatch is matched by errors for a hydra table whose size does
	// not agree with its record width or owner ranges.
	ErrSizeMismatch = errors.New("sf2: size mismatch")
	// ErrTruncatedChunk is matched by errors for chunks whose declared size
	// exceeds the data containing them.
	ErrTruncatedChunk = riff.ErrTruncated
	// ErrIndexOutOfRange is matched by errors for indices which point
	// outside the table or blob they index.
	ErrIndexOutOfRange = errors.New("sf2: index out of range")
	// ErrUnknownSampleType is matched by the non-fatal warnings recorded
	// for sample headers with an unrecognized sample type.
	ErrUnknownSampleType = errors.New("sf2: unknown sample type")
)

// UnexpectedChunkError describes a chunk tag or list signature which
// differs from what the SF2 layout requires at that position.
type UnexpectedChunkError struct {
	Where    string
	Expected string
	Actual   string
}

func (e *UnexpectedChunkError) Error() string {
	return fmt.Sprintf("sf2: %s: expected '%s', got '%s'", e.Where, e.Expected, e.Actual)
}

func (e *UnexpectedChunkError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

func unexpected(where, expected, actual string) error {
	return &UnexpectedChunkError{Where: where, Expected: expected, Actual: actual}
}

// SizeMismatchError describes a table chunk with an impossible size.
type SizeMismatchError struct {
	Chunk    riff.FourCC
	Actual   int
	Expected int // expected size, or the required record width
	Multiple bool
}

func (e *SizeMismatchError) Error() string {
	if e.Multiple {
		return fmt.Sprintf("sf2: chunk %s has size %d, not a multiple of %d", e.Chunk, e.Actual, e.Expected)
	}
	return fmt.Sprintf("sf2: chunk %s has size %d but %d was expected", e.Chunk, e.Actual, e.Expected)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// IndexOutOfRangeError describes an index read from a table record
// which falls outside the table (or sample blob) it refers to.
type IndexOutOfRangeError struct {
	Table  string
	Record int
	Field  string
	Index  int
	Limit  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("sf2: %s record %d: %s %d out of range (limit %d)", e.Table, e.Record, e.Field, e.Index, e.Limit)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// UnknownSampleTypeError records a sample header whose type code is not
// one of the SF2 sample link types.  It never aborts decoding.
type UnknownSampleTypeError struct {
	Sample int
	Name   string
	Code   uint16
}

func (e *UnknownSampleTypeError) Error() string {
	return fmt.Sprintf("sf2: sample %d (%s): unknown sample type %d", e.Sample, e.Name, e.Code)
}

func (e *UnknownSampleTypeError) Is(target error) bool {
	return target == ErrUnknownSampleType
}
