// Package oracle adapts the primality oracle to the domain.Oracle contract.
//
// Contents
//
//   - Native, the in-process oracle backed by internal/prime
//   - Boundary, which marshals caller values before consulting an oracle
//   - Counting, a decorator that records how often an oracle was reached
package oracle
