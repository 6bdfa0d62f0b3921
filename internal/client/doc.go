// Package client implements the client application runtime.
//
// It wires local storage, the ledger adapter, the encryption gateway, domain
// services, the local HTTP API, and background refresh into a single process
// lifecycle.
package client
