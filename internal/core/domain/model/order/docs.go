// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is an immutable-at-creation snapshot of a student's print request
// plus a single mutable status field. Orders start in Processing and move
// exactly once to Completed or Failed; terminal orders reject every further
// transition so completion and failure notifications fire at most once.
//
// The package also defines the closed enumerations the request snapshot is
// built from: PaperSize, ColorMode, and Orientation.
package order
