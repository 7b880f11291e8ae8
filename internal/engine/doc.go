// Package engine exposes the address operations consumed by the CLI:
// NormalizeAddress, ResolveAddress and SearchText.
//
// An Engine is assembled once from a validated config.Config. It owns the
// street resolver, the place-name resolver and its cache, and stamps every
// resolution with a request ID so its log lines share one request_id.
package engine
