// Package resolve computes the access path from a driver root down to a
// selected element.
//
// Resolution pipeline:
//  1. Walk parents from the target up to the root, collecting boundaries
//     (windows, user controls, pages) as checkpoints.
//  2. For each checkpoint, nearest first, reach the current element either
//     through a storage slot (exact) or through a tree search (possibly
//     ambiguous). A checkpoint that reaches neither ends the walk.
//  3. Accept the path only if it ends at the root itself.
//
// A path that relied on a positional search is returned with IsPerfect false
// rather than rejected.
package resolve
