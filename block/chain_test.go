package block

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/retained"
)

// buildChain creates blocks over consecutive runs of ds with the given
// sizes, links them in order and commits their intervals.
func buildChain(t *testing.T, s Surface, ds []*Drawable, sizes ...int) []*Block {
	t.Helper()
	var blocks []*Block
	at := 0
	for _, n := range sizes {
		b, _ := newTestBlock(t, s)
		for _, d := range ds[at : at+n] {
			b.AddDrawable(d)
		}
		b.NotifyInterval(ds[at], ds[at+n-1])
		if len(blocks) > 0 {
			LinkBlocks(blocks[len(blocks)-1], b)
		}
		blocks = append(blocks, b)
		at += n
	}
	return blocks
}

func collect(first *Block) []uint64 {
	var ids []uint64
	for b := first; b != nil; b = b.NextBlock {
		if b.First() == nil {
			continue
		}
		for d := b.First(); ; d = d.Next {
			ids = append(ids, d.ID())
			if d == b.Last() {
				break
			}
		}
	}
	return ids
}

func TestPartitionInvariant(t *testing.T) {
	ds := newDrawables(9)
	blocks := buildChain(t, &fakeSurface{}, ds, 2, 4, 3)

	if err := CheckChain(blocks[0], ds[0]); err != nil {
		t.Fatalf("CheckChain() = %v", err)
	}
	AuditChain(blocks[0], ds[0])

	want := make([]uint64, len(ds))
	for i, d := range ds {
		want[i] = d.ID()
	}
	if diff := cmp.Diff(want, collect(blocks[0])); diff != "" {
		t.Errorf("concatenated chains differ from paint order (-want +got):\n%s", diff)
	}
}

func TestPartitionInvariantEmptyBlock(t *testing.T) {
	s := &fakeSurface{}
	ds := newDrawables(4)
	blocks := buildChain(t, s, ds, 2, 2)

	empty, _ := newTestBlock(t, s)
	LinkBlocks(blocks[0], empty)
	LinkBlocks(empty, blocks[1])

	if err := CheckChain(blocks[0], ds[0]); err != nil {
		t.Errorf("CheckChain() with an empty block = %v", err)
	}
}

func TestPartitionDetectsGap(t *testing.T) {
	s := &fakeSurface{}
	ds := newDrawables(5)
	blocks := buildChain(t, s, ds, 2, 2)

	// ds[4] is in the paint order but in no block.
	err := CheckChain(blocks[0], ds[0])
	if !errors.Is(err, retained.ErrInvariant) {
		t.Fatalf("CheckChain() = %v, want invariant violation", err)
	}
	mustPanicInvariant(t, "AuditChain", func() { AuditChain(blocks[0], ds[0]) })
}

func TestPartitionDetectsReorderedBlocks(t *testing.T) {
	ds := newDrawables(4)
	blocks := buildChain(t, &fakeSurface{}, ds, 2, 2)

	UnlinkBlock(blocks[0])
	LinkBlocks(blocks[1], blocks[0])

	if err := CheckChain(blocks[1], ds[0]); err == nil {
		t.Error("CheckChain() accepted blocks out of paint order")
	}
}

func TestPartitionDetectsPendingBlock(t *testing.T) {
	ds := newDrawables(4)
	blocks := buildChain(t, &fakeSurface{}, ds, 2, 2)
	blocks[1].pendingLast = ds[2]

	if err := CheckChain(blocks[0], ds[0]); err == nil {
		t.Error("CheckChain() accepted a block with a pending interval")
	}
}

func TestPartitionDetectsBrokenBackLink(t *testing.T) {
	ds := newDrawables(4)
	blocks := buildChain(t, &fakeSurface{}, ds, 2, 2)
	blocks[1].PreviousBlock = nil

	if err := CheckChain(blocks[0], ds[0]); err == nil {
		t.Error("CheckChain() accepted a broken PreviousBlock link")
	}
}

func TestChainLength(t *testing.T) {
	ds := newDrawables(4)
	tests := []struct {
		first, last *Drawable
		want        int
	}{
		{nil, nil, 0},
		{ds[0], ds[0], 1},
		{ds[0], ds[3], 4},
		{ds[1], ds[2], 2},
		{ds[2], ds[1], -1},
		{nil, ds[1], -1},
	}
	for _, tt := range tests {
		if got := ChainLength(tt.first, tt.last); got != tt.want {
			t.Errorf("ChainLength(%v, %v) = %d, want %d", tt.first, tt.last, got, tt.want)
		}
	}

	Unlink(ds[1])
	if ds[0].Next != ds[2] || ds[2].Previous != ds[0] {
		t.Error("Unlink did not join neighbours")
	}
	if got := ChainLength(ds[0], ds[3]); got != 3 {
		t.Errorf("ChainLength after Unlink = %d, want 3", got)
	}
}
