package block

// Link makes next follow prev in the global paint order. Either side may be
// nil to terminate the order.
func Link(prev, next *Drawable) {
	if prev != nil {
		prev.Next = next
	}
	if next != nil {
		next.Previous = prev
	}
}

// LinkAll links ds in sequence and terminates both ends.
func LinkAll(ds ...*Drawable) {
	if len(ds) == 0 {
		return
	}
	ds[0].Previous = nil
	for i := 1; i < len(ds); i++ {
		Link(ds[i-1], ds[i])
	}
	ds[len(ds)-1].Next = nil
}

// Unlink removes d from the paint order, joining its neighbours.
func Unlink(d *Drawable) {
	Link(d.Previous, d.Next)
	d.Previous = nil
	d.Next = nil
}

// ChainLength counts the drawables from first to last inclusive.
// It returns -1 if last is not reachable from first.
func ChainLength(first, last *Drawable) int {
	if first == nil {
		if last == nil {
			return 0
		}
		return -1
	}
	n := 0
	for d := first; d != nil; d = d.Next {
		n++
		if d == last {
			return n
		}
	}
	return -1
}

// LinkBlocks makes next follow prev in output order. Either may be nil.
func LinkBlocks(prev, next *Block) {
	if prev != nil {
		prev.NextBlock = next
	}
	if next != nil {
		next.PreviousBlock = prev
	}
}

// UnlinkBlock removes b from the block order, joining its neighbours.
func UnlinkBlock(b *Block) {
	LinkBlocks(b.PreviousBlock, b.NextBlock)
	b.PreviousBlock = nil
	b.NextBlock = nil
}
