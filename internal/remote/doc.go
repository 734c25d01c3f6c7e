// Package remote exposes the primality oracle over HTTP and provides a client
// that satisfies domain.Oracle against such a server.
//
// HTTP API
//
//	GET /prime/{n}
//	    Return {"n": n, "prime": bool}. {n} is decoded with
//	    marshal.ParseInt32; a value that does not decode is answered with
//	    400 and the marshalling error, never with a verdict.
//
//	GET /healthz
//	    Return 200 "ok".
//
// Every request is recorded in an access log with method, path, remote,
// status, bytes and duration. Non-2xx responses seen by the client are
// returned as errors carrying the method, full URL and status text.
package remote
