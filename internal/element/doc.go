// Package element provides the read-only snapshot of a live GUI object graph
// that access-path resolution runs against.
//
// Every node participates in two parallel trees:
//   - the logical tree: structural ownership (composition)
//   - the visual tree: on-screen containment (rendering)
//
// Node identity is pointer identity. The core never mutates a node once the
// snapshot has been handed to it; the builder methods exist for the host that
// captures the GUI.
//
// Key types:
//   - Node: opaque handle into the snapshot
//   - Kind: closed tag set deciding which nodes are boundaries (driver roots)
//   - Slot: a named storage slot of a node holding a reference to another node
//   - Snapshot: a loaded set of nodes, usually parsed from YAML
package element
