// Package view is a headless host tree: containers and leaves with parent,
// child and index operations, plus a small layout pass.
//
// Two families of containers exist. Flow containers ([KindColumn],
// [KindRow]) place children one after another and ignore gravity. Overlay
// containers ([KindFrame]) place every child independently using its
// gravity and margins, so children may overlap. Only overlay containers can
// host a badge directly.
package view
