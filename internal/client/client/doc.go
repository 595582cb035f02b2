// Package client talks to the authority on behalf of the scanner.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Ping, Redeem
//     and the paginated catalog listings the sync subsystem consumes.
//  2. A gRPC implementation (see GRPCClient) that attaches the device token
//     to every call, traces calls with OpenTelemetry and maps gRPC status
//     codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, NewRepositories) wiring the
//     SQLite database and its migrations.
//
// # Error Handling
//
// Failures are classified with sentinel errors that callers match with
// errors.Is:
//   - ErrUnavailable: the request may not have been processed; retry later.
//   - ErrUnauthorized: the device token was refused; retry after the device
//     is provisioned again.
//   - ErrRejected: the request was understood and will never be accepted.
package client
