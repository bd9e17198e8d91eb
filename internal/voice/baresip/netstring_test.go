// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package baresip

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNetstring(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeNetstring(&buf, []byte(`{"a":1}`)))

	assert.Equal(t, `7:{"a":1},`, buf.String())
}

func TestNetstringReader_Frames(t *testing.T) {
	r := newNetstringReader(strings.NewReader("5:hello,3:abc,"))

	first, err := r.next()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(first))

	second, err := r.next()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(second))

	_, err = r.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNetstringReader_Malformed(t *testing.T) {
	tests := map[string]string{
		"missing comma": "5:hello;",
		"bad length":    "x:hello,",
		"zero length":   "0:,",
		"negative":      "-1:a,",
		"too large":     "99999999:a,",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newNetstringReader(strings.NewReader(input)).next()
			assert.ErrorIs(t, err, ErrBadNetstring)
		})
	}
}

func TestNetstringReader_Truncated(t *testing.T) {
	_, err := newNetstringReader(strings.NewReader("10:abc")).next()

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
