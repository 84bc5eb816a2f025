// Package history provides durable storage for past calculations.
//
// It is a collaborator of the expression core, not part of it: the only
// core facilities it touches are Compute and Format, and the core never
// calls back into it. Entries are stored in SQLite with WAL mode so a
// REPL can append while another process reads.
package history
