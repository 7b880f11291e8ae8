// Package main hosts the streetmatch CLI entrypoint and command graph.
//
// The Cobra command tree exposes the engine operations to the terminal:
// normalizing an address, free-text search over a corpus file or directory,
// resolving a single address and resolving a TSV batch. Configuration
// resolution and logging setup happen once in the command context so each
// subcommand only parses its own flags.
//
// Keep this package lean: matching behavior belongs in the internal
// packages and is surfaced here through flags and renderers.
package main
