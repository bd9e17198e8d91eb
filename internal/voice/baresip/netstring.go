// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package baresip

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	lengthDelim byte = ':'
	dataDelim   byte = ','

	maxFrameSize = 1 << 20
)

var ErrBadNetstring = errors.New("malformed netstring")

type netstringReader struct {
	r *bufio.Reader
}

func newNetstringReader(r io.Reader) *netstringReader {
	return &netstringReader{r: bufio.NewReader(r)}
}

// next reads one "<len>:<payload>," frame.
func (nr *netstringReader) next() ([]byte, error) {
	prefix, err := nr.r.ReadSlice(lengthDelim)
	if err != nil {
		if errors.Is(err, bufio.ErrBufferFull) {
			return nil, fmt.Errorf("%w: length prefix too long", ErrBadNetstring)
		}
		return nil, err
	}

	size, err := strconv.Atoi(string(prefix[:len(prefix)-1]))
	if err != nil || size <= 0 || size > maxFrameSize {
		return nil, fmt.Errorf("%w: bad length %q", ErrBadNetstring, prefix)
	}

	frame := make([]byte, size+1)
	if _, err = io.ReadFull(nr.r, frame); err != nil {
		return nil, err
	}
	if frame[size] != dataDelim {
		return nil, fmt.Errorf("%w: missing trailing comma", ErrBadNetstring)
	}

	return frame[:size], nil
}

// writeNetstring writes b as a single frame.
func writeNetstring(w io.Writer, b []byte) error {
	frame := make([]byte, 0, len(b)+12)
	frame = strconv.AppendInt(frame, int64(len(b)), 10)
	frame = append(frame, lengthDelim)
	frame = append(frame, b...)
	frame = append(frame, dataDelim)

	_, err := w.Write(frame)
	return err
}
