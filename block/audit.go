package block

import "github.com/gogpu/retained/internal/assert"

// Audit panics with a *retained.InvariantError if b is inconsistent.
// It does nothing unless verification is on.
//
// With allowPendingList false the committed chain is walked and checked
// against the member count, parent pointers and renderer; with
// allowPendingBlock also false the pending and committed intervals must
// match. With allowDirty false neither b nor any member may be dirty.
func (b *Block) Audit(allowPendingBlock, allowPendingList, allowDirty bool) {
	if !assert.Enabled() {
		return
	}
	if err := b.Check(allowPendingBlock, allowPendingList, allowDirty); err != nil {
		panic(err)
	}
}

// Check performs the checks of Audit regardless of the verification switch
// and returns the first violation.
func (b *Block) Check(allowPendingBlock, allowPendingList, allowDirty bool) error {
	const op = "Block.Audit"

	if b.disposed {
		return invariant(op, "%v is disposed", b)
	}
	if !allowDirty && b.dirty {
		return invariant(op, "%v is dirty", b)
	}
	if allowPendingList {
		return nil
	}

	if !allowPendingBlock && (b.pendingFirst != b.first || b.pendingLast != b.last) {
		return invariant(op, "%v has pending interval %v..%v, committed %v..%v",
			b, b.pendingFirst, b.pendingLast, b.first, b.last)
	}

	count := 0
	if b.first == nil || b.last == nil {
		if b.first != b.last {
			return invariant(op, "%v has half-open interval %v..%v", b, b.first, b.last)
		}
	} else {
		for d := b.first; ; d = d.Next {
			if d == nil {
				return invariant(op, "%v chain from %v never reaches %v", b, b.first, b.last)
			}
			count++
			if count > b.count {
				return invariant(op, "%v chain is longer than its %d members", b, b.count)
			}
			if d.parent != b {
				return invariant(op, "%v in %v has parent %v", d, b, d.parent)
			}
			if d.Renderer != b.Renderer {
				return invariant(op, "%v in %v has a different renderer", d, b)
			}
			if err := d.check(allowDirty); err != nil {
				return err
			}
			if d == b.last {
				break
			}
		}
	}
	if count != b.count {
		return invariant(op, "%v counts %d drawables, chain has %d", b, b.count, count)
	}

	if b.debugList != nil && len(b.debugList) != b.count {
		return invariant(op, "%v debug list has %d drawables, count is %d",
			b, len(b.debugList), b.count)
	}
	return nil
}

// AuditChain panics if the blocks linked from first do not partition the
// global paint order starting at head. It does nothing unless verification
// is on.
func AuditChain(first *Block, head *Drawable) {
	if !assert.Enabled() {
		return
	}
	if err := CheckChain(first, head); err != nil {
		panic(err)
	}
}

// CheckChain verifies that walking blocks via NextBlock and concatenating
// their committed intervals reproduces the drawable order from head with no
// duplicates or gaps. Every block must be synced (pending == committed).
func CheckChain(first *Block, head *Drawable) error {
	const op = "AuditChain"

	if first != nil && first.PreviousBlock != nil {
		return invariant(op, "%v is not the first block: previous is %v", first, first.PreviousBlock)
	}

	seen := make(map[*Drawable]struct{})
	next := head
	var prev *Block
	for b := first; b != nil; b = b.NextBlock {
		if b.PreviousBlock != prev {
			return invariant(op, "%v.PreviousBlock is %v, want %v", b, b.PreviousBlock, prev)
		}
		prev = b
		if err := b.Check(false, false, true); err != nil {
			return err
		}
		if b.first == nil {
			continue
		}
		if b.first != next {
			return invariant(op, "%v starts at %v, paint order continues at %v", b, b.first, next)
		}
		for d := b.first; ; d = d.Next {
			if _, dup := seen[d]; dup {
				return invariant(op, "%v appears twice", d)
			}
			seen[d] = struct{}{}
			if d == b.last {
				next = d.Next
				break
			}
		}
	}
	if next != nil {
		return invariant(op, "%v and later drawables belong to no block", next)
	}
	return nil
}
