// Copyright 2024 The Minicask Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"reflect"
	"strings"
	"testing"
)

const header = "Descr,ThreadQty,KeySize,ValueSize,ReadPercent,OperationQty,DurationUs,ForcedWriteSync,CustomValue\n"

func parseAll(t *testing.T, data string) ([]Sample, error) {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []Sample
	for r.Scan() {
		out = append(out, r.Sample())
	}
	return out, r.Err()
}

func TestReader(t *testing.T) {
	samples, err := parseAll(t, header+
		"Monothread,1,8,8,100,1000000,500000,0,0\n"+
		"Multithread,4,8,256,95,250000,400000,1,7\n")
	if err != nil {
		t.Fatal("parsing failed:", err)
	}
	want := []Sample{
		{"Monothread", 1, 8, 8, 100, 1000000, 500000, false, 0},
		{"Multithread", 4, 8, 256, 95, 250000, 400000, true, 7},
	}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("got %+v, want %+v", samples, want)
	}
}

func TestReaderFloatCoercion(t *testing.T) {
	// The benchmark tool may format counts as floats. They are parsed
	// as floats and truncated.
	samples, err := parseAll(t, header+"Monothread,1.0,8.9,16.2,95.5,1e6,500000.7,0.0,0\n")
	if err != nil {
		t.Fatal("parsing failed:", err)
	}
	want := []Sample{{"Monothread", 1, 8, 16, 95, 1000000, 500000, false, 0}}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("got %+v, want %+v", samples, want)
	}
}

func TestReaderEmpty(t *testing.T) {
	for _, test := range []struct {
		name, data string
	}{
		{"empty", ""},
		{"headerOnly", header},
	} {
		t.Run(test.name, func(t *testing.T) {
			samples, err := parseAll(t, test.data)
			if err != nil {
				t.Fatal("parsing failed:", err)
			}
			if len(samples) != 0 {
				t.Errorf("got %d samples, want 0", len(samples))
			}
		})
	}
}

func TestReaderBlankLine(t *testing.T) {
	// csv.Reader skips fully blank lines; they do not count as rows
	// with a wrong field count.
	samples, err := parseAll(t, header+
		"Monothread,1,8,8,100,1000000,500000,0,0\n"+
		"\n"+
		"Monothread,1,8,16,100,900000,500000,0,0\n")
	if err != nil {
		t.Fatal("parsing failed:", err)
	}
	if len(samples) != 2 {
		t.Errorf("got %d samples, want 2", len(samples))
	}
}

func TestReaderMalformedRow(t *testing.T) {
	for _, test := range []struct {
		name, data string
		wantErr    string
	}{
		{
			"fieldCount",
			header + "Monothread,1,8,8,100,1000000\n",
			"test:2: got 6 fields, want 9",
		},
		{
			"nonNumeric",
			header + "Monothread,1,8,eight,100,1000000,500000,0,0\n",
			`test:2: field 3: malformed number "eight"`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			samples, err := parseAll(t, test.data)
			if err == nil {
				t.Fatal("parsing succeeded, want error")
			}
			if got := err.Error(); got != test.wantErr {
				t.Errorf("got error %q, want %q", got, test.wantErr)
			}
			if len(samples) != 0 {
				t.Errorf("got %d samples before error, want 0", len(samples))
			}
			se, ok := err.(*SyntaxError)
			if !ok {
				t.Fatalf("got error type %T, want *SyntaxError", err)
			}
			if se.FileName != "test" || se.Line != 2 {
				t.Errorf("got position %s:%d, want test:2", se.FileName, se.Line)
			}
		})
	}
}

func TestReaderStopsAtError(t *testing.T) {
	// Rows after a malformed one must not be returned.
	samples, err := parseAll(t, header+
		"Monothread,1,8,8,100,1000000,500000,0,0\n"+
		"Monothread,oops,8,8,100,1000000,500000,0,0\n"+
		"Monothread,1,8,16,100,1000000,500000,0,0\n")
	if err == nil {
		t.Fatal("parsing succeeded, want error")
	}
	if len(samples) != 1 {
		t.Errorf("got %d samples before error, want 1", len(samples))
	}
}
