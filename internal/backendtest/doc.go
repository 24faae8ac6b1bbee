// Package backendtest provides a scriptable in-process download backend for
// tests. It serves the same endpoints as the real backend through gin on an
// httptest server and records every request it receives.
package backendtest
