// Package domain defines core data models and interfaces shared across libprime.
// It contains plain types (verdicts, reports), contracts (interfaces) and the
// sentinel errors raised at the foreign-function boundary.
package domain
