// Package testing provides helpers for testing badges and host trees
// without a real display.
//
// # Draw operations
//
// Record what a badge paints as comparable values:
//
//	ops := badgertest.RecordOps(graphics.Size{Width: 24, Height: 24}, b.PaintSize)
//	circle := badgertest.OpsNamed(ops, "drawCircle")
//
// # Finding nodes
//
//	wrapper := badgertest.Find(root, badgertest.ByKind(view.KindFrame)).First()
//
// # Snapshots
//
//	snap := badgertest.CaptureSnapshot(root, ops)
//	snap.MatchesFile(t, "testdata/avatar.snapshot.yaml")
//
// Set BADGER_UPDATE_SNAPSHOTS=1 to rewrite golden files.
package testing
