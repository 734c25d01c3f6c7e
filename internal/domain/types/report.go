package types

// ScanReport summarises a range scan.
type ScanReport struct {
	From      int32   `json:"from"`
	To        int32   `json:"to"`
	Count     int     `json:"count"`
	Primes    []int32 `json:"primes,omitempty"`
	Verified  bool    `json:"verified"`
	ElapsedMS int64   `json:"elapsed_ms"`
}
