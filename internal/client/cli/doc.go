// Package cli provides the todo command-line client.
//
// It wires configuration, storage and services into an App and exposes the
// App through a cobra command tree (one command per process) and an
// interactive shell that keeps the login for the whole session.
//
// All user interaction goes through the Terminal interface. Console is the
// real implementation; tests drive the App with a scripted one.
//
// Commands that operate on a single task use the Locator: the user picks a
// search criterion (position, title or date), sees the candidates in a
// renumbered table and, for title and date searches, confirms one row.
package cli
