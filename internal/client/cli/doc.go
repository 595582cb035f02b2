// Package cli provides the interactive scanner.
//
// It wires configuration, the local database, the validator and the
// background scheduler, then reads commands from standard input. Ticket
// secrets are usually typed by a barcode reader acting as a keyboard, so a
// bare line that is not a command is not guessed at; use "scan <secret>"
// or "scan" followed by the secret at the prompt.
//
// Commands:
//
//	scan [-l list] [-f] [-u] [-a question=answer]... [secret]
//	exit [-l list] [-f] [secret]     record a check-out
//	sync [--full] [-r resource]       download catalog data now
//	drain                             upload queued redemptions now
//	status                            mode, queue size and sync state
//	lists [--use id]                  cached check-in lists
//	token                             replace the device token
//	help
//	quit
package cli
