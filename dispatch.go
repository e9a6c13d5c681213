// Package dispatch assigns postal addresses to delivery drivers and resolves
// spoken or typed address fragments back to the drivers they were assigned to.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, colorful/, http/).
package dispatch
