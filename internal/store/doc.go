// Package store persists scan reports as JSON on disk.
//
// Writes go through a temp file in the target directory followed by a
// rename, so a reader never observes a partially written report.
package store
