package x86_64

import (
	"fmt"
	"sort"

	"github.com/ferrocore/x86asm/internal/diagnostics"
)

// maxShortenIterations bounds the fixed-point loop. Termination is actually
// guaranteed by monotonicity (each pass only shrinks), not by this cap; it
// exists as a diagnostic belt-and-braces, not a recovery mechanism.
const maxShortenIterations = 10

// Shorten iteratively rewrites long-form (32-bit displacement) branches to
// their 2-byte short form wherever the computed distance fits a signed
// 8-bit range, shifting trailing bytes down and recomputing affected
// distances until a fixed point. Buffer length never grows across
// iterations. Hitting the iteration cap without reaching a fixed point
// signals a logic bug, not a recoverable condition.
func (b *Buffer) Shorten() error {
	for i := 0; i < maxShortenIterations; i++ {
		changed, err := b.shortenPass()
		if err != nil {
			return err
		}
		if !changed {
			b.trace(fmt.Sprintf("shorten reached a fixed point after %d pass(es)", i+1))
			return nil
		}
	}
	if b.diag != nil {
		b.diag.Warning(diagnostics.At(b.Len()), fmt.Sprintf("shorten did not settle within %d iterations", maxShortenIterations))
	}
	return fmt.Errorf("x86_64: branch shortening did not reach a fixed point within %d iterations", maxShortenIterations)
}

// shortenPass performs one left-to-right rewrite of the byte stream,
// converting any branch whose distance (computed against the pre-pass
// label table) now fits in [-128, 127] to short form, and reports whether
// anything changed.
func (b *Buffer) shortenPass() (bool, error) {
	oldBytes := b.bytes
	oldLabels := b.labels

	sorted := make([]PendingBranch, len(b.pending))
	copy(sorted, b.pending)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Site < sorted[j].Site })

	labelsAtOffset := make(map[int][]LabelID)
	for id, offset := range oldLabels {
		labelsAtOffset[offset] = append(labelsAtOffset[offset], id)
	}

	newBytes := make([]byte, 0, len(oldBytes))
	newLabels := make(map[LabelID]int, len(oldLabels))
	newPending := make([]PendingBranch, 0, len(sorted))

	changed := false
	cursor := 0
	pbIdx := 0

	for cursor < len(oldBytes) {
		for _, id := range labelsAtOffset[cursor] {
			newLabels[id] = len(newBytes)
		}

		if pbIdx < len(sorted) && sorted[pbIdx].Site == cursor {
			pb := sorted[pbIdx]
			pbIdx++

			target, ok := oldLabels[pb.Target]
			if !ok {
				return false, fmt.Errorf("x86_64: undefined label %d referenced by %s at offset %d", pb.Target, pb.Kind, pb.Site)
			}

			newSite := len(newBytes)
			wasShort := pb.Length == 2

			if pb.Kind.shortenable() {
				distance := target - (pb.Site + 2)
				if distance >= -128 && distance <= 127 {
					newBytes = append(newBytes, shortOpcode[pb.Kind], 0)
					newPending = append(newPending, PendingBranch{Site: newSite, Target: pb.Target, Kind: pb.Kind, Length: 2})
					if !wasShort {
						changed = true
					}
					cursor += pb.Length
					continue
				}
			}

			longOp := longOpcode[pb.Kind]
			newBytes = append(newBytes, longOp...)
			newBytes = append(newBytes, 0, 0, 0, 0)
			newPending = append(newPending, PendingBranch{Site: newSite, Target: pb.Target, Kind: pb.Kind, Length: len(longOp) + 4})
			cursor += pb.Length
			continue
		}

		newBytes = append(newBytes, oldBytes[cursor])
		cursor++
	}
	for _, id := range labelsAtOffset[len(oldBytes)] {
		newLabels[id] = len(newBytes)
	}

	b.bytes = newBytes
	b.labels = newLabels
	b.pending = newPending

	if err := b.patchDistances(); err != nil {
		return false, err
	}

	return changed, nil
}

// patchDistances writes every pending branch's displacement bytes using the
// buffer's current label table and pending-branch sites. Short-form entries
// get a single signed byte at site+1; long-form entries get a signed
// 32-bit value in the four bytes before site+length.
func (b *Buffer) patchDistances() error {
	for _, pb := range b.pending {
		target, ok := b.labels[pb.Target]
		if !ok {
			return fmt.Errorf("x86_64: undefined label %d referenced by %s at offset %d", pb.Target, pb.Kind, pb.Site)
		}
		distance := target - (pb.Site + pb.Length)
		if pb.Length == 2 {
			if distance < -128 || distance > 127 {
				return fmt.Errorf("x86_64: short branch at offset %d has out-of-range distance %d", pb.Site, distance)
			}
			if err := b.PatchAt(pb.Site+1, []byte{byte(int8(distance))}); err != nil {
				return err
			}
			continue
		}
		if err := b.patchI32At(pb.Site+pb.Length-4, int32(distance)); err != nil {
			return err
		}
	}
	return nil
}
