package variant

import "github.com/google/uuid"

// Diff partitions an incoming record set against existing IDs, the same way
// at every nesting level (options, values, variants):
//
//   - records without an ID are creates
//   - records whose ID exists are updates
//   - existing IDs absent from the incoming set are deletes
//
// A record carrying an ID that no existing row has is treated as a create
// with the ID discarded, so stale form state cannot resurrect deleted rows.
type Diff[T any] struct {
	Creates []T
	Updates []T
	Deletes []uuid.UUID
}

// ComputeDiff builds the create/update/delete partition. id extracts the
// optional identity from an incoming record; existing is the set of
// currently persisted IDs.
func ComputeDiff[T any](incoming []T, existing []uuid.UUID, id func(T) *uuid.UUID) Diff[T] {
	known := make(map[uuid.UUID]bool, len(existing))
	for _, e := range existing {
		known[e] = true
	}

	var d Diff[T]
	seen := make(map[uuid.UUID]bool, len(incoming))
	for _, rec := range incoming {
		recID := id(rec)
		if recID != nil && known[*recID] {
			d.Updates = append(d.Updates, rec)
			seen[*recID] = true
			continue
		}
		d.Creates = append(d.Creates, rec)
	}

	for _, e := range existing {
		if !seen[e] {
			d.Deletes = append(d.Deletes, e)
		}
	}
	return d
}
