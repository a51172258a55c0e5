//go:build !cgo_sqlite

package sheet

import _ "modernc.org/sqlite"

// Pure-Go driver, the default so the binary cross-compiles without a C
// toolchain.
const sqliteDriver = "sqlite"
