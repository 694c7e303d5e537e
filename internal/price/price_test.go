// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

package price

import (
	"encoding/json"
	"testing"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "string passes through verbatim",
			input: "IDR 750,000",
			want:  "IDR 750,000",
		},
		{
			name:  "non-canonical string passes through",
			input: "Custom Quote",
			want:  "Custom Quote",
		},
		{
			name:  "empty string stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "float from JSON decode",
			input: float64(750000),
			want:  "IDR 750,000",
		},
		{
			name:  "million grouping",
			input: float64(1250000),
			want:  "IDR 1,250,000",
		},
		{
			name:  "small number ungrouped",
			input: float64(999),
			want:  "IDR 999",
		},
		{
			name:  "zero",
			input: float64(0),
			want:  "IDR 0",
		},
		{
			name:  "int",
			input: 500000,
			want:  "IDR 500,000",
		},
		{
			name:  "json.Number",
			input: json.Number("750000"),
			want:  "IDR 750,000",
		},
		{
			name:  "nil",
			input: nil,
			want:  "",
		},
		{
			name:  "unsupported type",
			input: []string{"x"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.input); got != tt.want {
				t.Errorf("Display(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(750000); got != "IDR 750,000" {
		t.Errorf("Format(750000) = %q", got)
	}
}
