package bitcoin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/simplicity/pkg/bitio"
	"github.com/funvibe/simplicity/pkg/types"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, n := range Nodes() {
		t.Run(n.String(), func(t *testing.T) {
			w := bitio.NewWriter()
			wrote, err := n.Encode(w)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			bs, err := w.BitString()
			if err != nil {
				t.Fatalf("BitString: %v", err)
			}

			r := bitio.NewBitStringReader(bs)
			prefix, err := r.ReadBits(2)
			if err != nil {
				t.Fatalf("reading prefix: %v", err)
			}
			if prefix != 2 {
				t.Errorf("codeword prefix = %02b, want 10", prefix)
			}
			got, err := Decode(r)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != n {
				t.Errorf("round-trip = %s, want %s", got, n)
			}

			wantLen := 6
			switch n {
			case Version, LockTime, CurrentIndex, InputPrevOutpoint:
				wantLen = 7
			}
			if wrote != wantLen {
				t.Errorf("codeword length = %d bits, want %d", wrote, wantLen)
			}
		})
	}
}

func TestEncodeCodewords(t *testing.T) {
	tests := []struct {
		node Node
		want uint
		bits uint
	}{
		{node: Version, want: 64, bits: 7},
		{node: LockTime, want: 65, bits: 7},
		{node: InputsHash, want: 33, bits: 6},
		{node: CurrentSequence, want: 39, bits: 6},
		{node: CurrentIndex, want: 80, bits: 7},
		{node: InputPrevOutpoint, want: 81, bits: 7},
		{node: ScriptCMR, want: 47, bits: 6},
	}
	for _, tt := range tests {
		w := bitio.NewWriter()
		if _, err := tt.node.Encode(w); err != nil {
			t.Fatalf("%s: Encode: %v", tt.node, err)
		}
		bs, err := w.BitString()
		if err != nil {
			t.Fatalf("%s: BitString: %v", tt.node, err)
		}
		got, err := bitio.NewBitStringReader(bs).ReadBits(tt.bits)
		if err != nil {
			t.Fatalf("%s: ReadBits: %v", tt.node, err)
		}
		if got != tt.want {
			t.Errorf("%s: codeword = %d, want %d", tt.node, got, tt.want)
		}
	}
}

func TestDecodeEndOfStream(t *testing.T) {
	// A 4-bit code of 0 demands one further bit.
	w := bitio.NewWriter()
	if _, err := w.WriteBits(0, 4); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	bs, err := w.BitString()
	if err != nil {
		t.Fatalf("BitString: %v", err)
	}
	if _, err := Decode(bitio.NewBitStringReader(bs)); !errors.Is(err, bitio.ErrEndOfStream) {
		t.Errorf("truncated code 0: got %v, want ErrEndOfStream", err)
	}

	// An empty source fails on the code itself.
	if _, err := Decode(bitio.NewReader(nil)); !errors.Is(err, bitio.ErrEndOfStream) {
		t.Errorf("empty source: got %v, want ErrEndOfStream", err)
	}
}

func TestTypeTables(t *testing.T) {
	tests := []struct {
		node   Node
		source types.Name
		target types.Name
	}{
		{node: Version, source: types.NameOne, target: types.NameWord32},
		{node: LockTime, source: types.NameOne, target: types.NameWord32},
		{node: InputsHash, source: types.NameOne, target: types.NameWord256},
		{node: TotalInputValue, source: types.NameOne, target: types.NameWord64},
		{node: CurrentPrevOutpoint, source: types.NameOne, target: types.NameWord256Word32},
		{node: CurrentIndex, source: types.NameOne, target: types.NameWord32},
		{node: InputPrevOutpoint, source: types.NameWord32, target: types.NameSWord256Word32},
		{node: InputValue, source: types.NameWord32, target: types.NameSWord64},
		{node: InputSequence, source: types.NameWord32, target: types.NameSWord32},
		{node: NumOutputs, source: types.NameOne, target: types.NameWord32},
		{node: OutputValue, source: types.NameWord32, target: types.NameSWord64},
		{node: OutputScriptHash, source: types.NameWord32, target: types.NameSWord256},
		{node: ScriptCMR, source: types.NameOne, target: types.NameWord256},
	}
	for _, tt := range tests {
		if got := tt.node.SourceType(); got != tt.source {
			t.Errorf("%s: source type = %s, want %s", tt.node, got, tt.source)
		}
		if got := tt.node.TargetType(); got != tt.target {
			t.Errorf("%s: target type = %s, want %s", tt.node, got, tt.target)
		}
	}

	// Both tables are total.
	for _, n := range Nodes() {
		_ = n.SourceType()
		_ = n.TargetType()
	}
}

func TestCMRStable(t *testing.T) {
	for _, n := range Nodes() {
		if n.CMR() != n.CMR() {
			t.Errorf("%s: repeated CMR calls disagree", n)
		}
	}
	seen := make(map[string]Node)
	for _, n := range Nodes() {
		hex := n.CMR().String()
		if prev, ok := seen[hex]; ok {
			t.Errorf("%s and %s share a CMR", prev, n)
		}
		seen[hex] = n
	}
}

func TestCMRVectors(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "cmr_vectors.yaml"))
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}
	var vectors map[string]string
	if err := yaml.Unmarshal(raw, &vectors); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}
	if len(vectors) != numNodes {
		t.Fatalf("vector file has %d entries, want %d", len(vectors), numNodes)
	}
	for _, n := range Nodes() {
		want, ok := vectors[n.String()]
		if !ok {
			t.Errorf("%s: no vector entry", n)
			continue
		}
		if got := n.CMR().String(); got != want {
			t.Errorf("%s: CMR = %s, want %s", n, got, want)
		}
	}
}
