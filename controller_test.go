// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ili9341

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type record struct {
	cmd  byte
	data []byte
}

type fakeController struct {
	records []record
	waits   []time.Duration
}

func (f *fakeController) sendCommand(cmd byte, data ...byte) {
	f.records = append(f.records, record{cmd: cmd, data: data})
}

func (f *fakeController) wait(d time.Duration) {
	f.waits = append(f.waits, d)
}

func TestInitSequence(t *testing.T) {
	for _, tc := range []struct {
		name      string
		opts      Opts
		want      []record
		wantWaits []time.Duration
	}{
		{
			name: "tft32 16bpp",
			opts: TFT32,
			want: []record{
				{cmd: softwareReset},
				{cmd: powerControl1, data: []byte{0x23}},
				{cmd: vcomControl1, data: []byte{0x3E, 0x28}},
				{cmd: vcomControl2, data: []byte{0x86}},
				{cmd: memoryAccessControl, data: []byte{0x48}},
				{cmd: pixelFormatSet, data: []byte{0x55}},
				{cmd: displayFunctionControl, data: []byte{0x08, 0x82, 0x27}},
				{cmd: sleepOut},
				{cmd: displayOn},
			},
			wantWaits: []time.Duration{
				5 * time.Millisecond,
				5 * time.Millisecond,
				120 * time.Millisecond,
			},
		},
		{
			name: "18bpp",
			opts: func() Opts {
				opts := TFT32
				opts.Format = PixelFormat18bit
				return opts
			}(),
			want: []record{
				{cmd: softwareReset},
				{cmd: powerControl1, data: []byte{0x23}},
				{cmd: vcomControl1, data: []byte{0x3E, 0x28}},
				{cmd: vcomControl2, data: []byte{0x86}},
				{cmd: memoryAccessControl, data: []byte{0x48}},
				{cmd: pixelFormatSet, data: []byte{0x66}},
				{cmd: displayFunctionControl, data: []byte{0x08, 0x82, 0x27}},
				{cmd: sleepOut},
				{cmd: displayOn},
			},
			wantWaits: []time.Duration{
				5 * time.Millisecond,
				5 * time.Millisecond,
				120 * time.Millisecond,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got fakeController

			initSequence(&got, &tc.opts)

			if diff := cmp.Diff(got.records, tc.want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
				t.Errorf("initSequence() difference (-got +want):\n%s", diff)
			}
			if diff := cmp.Diff(got.waits, tc.wantWaits, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("initSequence() wait difference (-got +want):\n%s", diff)
			}
			// The bring-up is exactly 9 command frames.
			if len(got.records) != 9 {
				t.Errorf("initSequence() sent %d commands, want 9", len(got.records))
			}
		})
	}
}
