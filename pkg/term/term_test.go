package term

import (
	"errors"
	"testing"

	"github.com/funvibe/simplicity/pkg/bitio"
)

// stubExt is a minimal extension catalog for tests: it encodes itself as a
// fixed-width codeword.
type stubExt uint8

func (e stubExt) Encode(w bitio.Writer) (int, error) {
	return w.WriteBits(uint(e), 4)
}

type tTerm = Term[struct{}, stubExt]

func TestConstructorsSetKinds(t *testing.T) {
	u := Unit[struct{}, stubExt]()
	tests := []struct {
		got  *tTerm
		want Kind
	}{
		{got: u, want: KindUnit},
		{got: InjL(u), want: KindInjL},
		{got: InjR(u), want: KindInjR},
		{got: Pair(u, u), want: KindPair},
		{got: Comp(u, u), want: KindComp},
		{got: Case(u, u), want: KindCase},
		{got: Drop(u), want: KindDrop},
		{got: Wit[struct{}, stubExt](struct{}{}), want: KindWitness},
		{got: Jet[struct{}, stubExt](0), want: KindJet},
		{got: Ext[struct{}](stubExt(3)), want: KindExt},
	}
	for _, tt := range tests {
		if tt.got.Kind != tt.want {
			t.Errorf("constructor produced kind %s, want %s", tt.got.Kind, tt.want)
		}
	}
}

func TestSubTermSharing(t *testing.T) {
	shared := Pair(Unit[struct{}, stubExt](), Unit[struct{}, stubExt]())
	a := Comp(shared, shared)
	if a.Left != a.Right {
		t.Errorf("shared sub-term was copied")
	}
	b := Pair(a, shared)
	if b.Right != shared {
		t.Errorf("linking into a second parent changed the sub-term handle")
	}
}

func TestEncodeNode(t *testing.T) {
	w := bitio.NewWriter()
	leaf := Ext[struct{}](stubExt(9))
	n, err := leaf.EncodeNode(w)
	if err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}
	if n != 4 {
		t.Errorf("EncodeNode wrote %d bits, want 4", n)
	}
	bs, err := w.BitString()
	if err != nil {
		t.Fatalf("BitString: %v", err)
	}
	got, err := bitio.NewBitStringReader(bs).ReadBits(4)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if got != 9 {
		t.Errorf("encoded codeword = %d, want 9", got)
	}
}

func TestEncodeNodeOnNonExtension(t *testing.T) {
	u := Unit[struct{}, stubExt]()
	if _, err := u.EncodeNode(bitio.NewWriter()); !errors.Is(err, ErrNotExtension) {
		t.Errorf("EncodeNode on unit: got %v, want ErrNotExtension", err)
	}
}
