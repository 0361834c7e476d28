// Package cli implements the command-line interface for revtag.
//
// # Overview
//
// revtag parses, compares and encodes revisions produced by
// 'git describe --tags', such as v0.9.8-760-gabcd1234.
//
// # Commands
//
//	revtag parse <revision>...          Fields and hex record of each revision
//	revtag encode <revision>...         32-character hex of the 16-byte record
//	revtag decode <hex>                 Revision stored in a hex record
//	revtag compare <a> <b>              Order (-1, 0, 1) and equality
//	revtag sort [--file f] [-r] <rev>... Oldest to newest
//	revtag describe [--dir d]...        Run git describe and parse the result
//	revtag image [--latest] <ref>...    Revisions in image reference tags
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, toml, table (default: yaml)
//	--log-level    debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL      Default for --log-level
//	REVTAG_FORMAT  Default for --format
//	REVTAG_DIR     Default for describe --dir (comma separated)
//
// # Exit Codes
//
//	0  Success
//	1  Any error (invalid arguments, parse failure, git failure)
package cli
