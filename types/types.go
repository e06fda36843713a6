// Package types defines small shared enumerations used across the segsweep engine:
// the orientation of three points, and the role a segment plays at an event point.
//
// These live in their own package (rather than alongside the point or segment types)
// so that the event store, the status structure, and the sweep driver can all depend
// on them without importing each other.
package types
