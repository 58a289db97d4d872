// Package cli implements the ksuid command line tool.
//
// The root command generates ids, or parses the ids given as arguments, and
// prints them in one of several formats (string, inspect, time, timestamp,
// payload, raw, json, yaml, template). The vectors subcommand writes
// interop test data as JSON lines.
//
// Defaults come from KSUID_* environment variables (see Config) and are
// overridden by flags.
package cli
