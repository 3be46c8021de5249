// Package design holds the driver generation request assembled by the design
// surface: the approved members of the driver and the user's attach choices.
//
// Builder enforces unique member names while the request is edited;
// Validate rejects requests the code emitter cannot honour.
package design
