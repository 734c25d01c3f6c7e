package types

import "strconv"

// Verdict is the outcome of one primality check.
type Verdict struct {
	N     int32 `json:"n"`
	Prime bool  `json:"prime"`
}

// String renders the verdict the way the demo callers print it.
func (v Verdict) String() string {
	if v.Prime {
		return strconv.FormatInt(int64(v.N), 10) + " is prime"
	}
	return strconv.FormatInt(int64(v.N), 10) + " is not a prime"
}

// WideVerdict is the outcome of an unsigned 32- or 64-bit check.
type WideVerdict struct {
	N     uint64 `json:"n"`
	Width int    `json:"width"`
	Prime bool   `json:"prime"`
}

// String renders the verdict like Verdict.String.
func (v WideVerdict) String() string {
	if v.Prime {
		return strconv.FormatUint(v.N, 10) + " is prime"
	}
	return strconv.FormatUint(v.N, 10) + " is not a prime"
}
