// Package diagnostic provides structured infos, warnings and errors
// produced while discovering driver members.
//
// Key capabilities:
//   - Elements that cannot be reached from the chosen root
//   - Access paths that rely on sibling order and need rework
//   - Requests rejected before emission
package diagnostic
