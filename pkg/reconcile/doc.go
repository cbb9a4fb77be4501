// Package reconcile drives the check, link and clean operations over a
// linkfile.Set.
//
// Each entry goes through the same two steps: its status is computed from
// the filesystem, then the operation picks exactly one action for that
// status:
//
//	          | check | link    | clean
//	Healthy   | none  | none    | remove
//	Unlinked  | none  | create  | none
//	Mismatched| none  | replace | remove
//	Occupied  | none  | refuse  | refuse
//
// Entries are processed one at a time in set order. Per-entry failures are
// reported and counted; they never stop the remaining entries. Nothing is
// locked, so a path changed by another process between classification and
// action can be acted on with a stale status.
package reconcile
