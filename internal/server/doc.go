// Package server wires and runs the catalog's transport servers.
//
// It starts the HTTP API and, when configured, the gRPC health server
// together with the database health probe, and stops all of them
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
