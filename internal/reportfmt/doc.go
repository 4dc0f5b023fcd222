// Package reportfmt renders evaluation reports: pretty text with an
// optional colored tile grid, machine-readable JSON, and a
// schema-versioned msgpack export.
package reportfmt
