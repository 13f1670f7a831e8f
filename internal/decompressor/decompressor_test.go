// Copyright 2023 The Owlgo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package decompressor

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompressor(t *testing.T) {
	cases := []struct {
		message string
		input   io.Reader
		expect  []byte
		err     error
		readErr error
	}{
		{
			message: "text input",
			input:   strings.NewReader("owl data\n"),
			expect:  []byte("owl data\n"),
		},
		{
			message: "gzip input",
			input: bytes.NewReader([]byte{
				0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x03, 0xcb, 0x2f, 0xcf, 0x51, 0x48, 0x49,
				0x2c, 0x49, 0xe4, 0x02, 0x00, 0x6a, 0xd3, 0x1f, 0xa8, 0x09, 0x00, 0x00, 0x00,
			}),
			expect: []byte("owl data\n"),
		},
		{
			message: "bzip2 input",
			input: bytes.NewReader([]byte{
				0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xc0, 0xbe, 0xf2, 0xee, 0x00, 0x00,
				0x03, 0x51, 0x80, 0x00, 0x10, 0x40, 0x00, 0x24, 0x04, 0x84, 0x80, 0x20, 0x00, 0x31, 0x0c, 0x08,
				0x20, 0x33, 0x49, 0xa8, 0x6e, 0x04, 0xf1, 0x77, 0x24, 0x53, 0x85, 0x09, 0x0c, 0x0b, 0xef, 0x2e,
				0xe0,
			}),
			expect: []byte("owl data\n"),
		},
		{
			message: "bad gzip input",
			input:   strings.NewReader("\x1f\x8bowl data\n"),
			err:     gzip.ErrHeader,
		},
		{
			message: "bad bzip2 input",
			input:   strings.NewReader("\x42\x5a\x68owl data\n"),
			readErr: bzip2.StructuralError("invalid compression level"),
		},
	}
	for _, c := range cases {
		r, err := New(c.input)
		require.Equal(t, c.err, err, c.message)
		if err != nil {
			continue
		}
		p := make([]byte, len(c.expect)*2)
		n, err := r.Read(p)
		if err != io.EOF {
			require.Equal(t, c.readErr, err, c.message)
		}
		if len(c.expect) == 0 {
			require.Empty(t, p[:n], c.message)
			continue
		}
		require.Equal(t, c.expect, p[:n], c.message)
	}
}
