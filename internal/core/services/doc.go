// Package services implements the core use cases behind the driving ports:
// metadata validation, canonical payload encoding, placement planning, the
// stamp pipeline, sheet attribute extraction and settings management.
// Services hold no per-call state and reach infrastructure only through
// driven ports.
package services
