//go:build cgo_sqlite

package sheet

import _ "github.com/mattn/go-sqlite3"

// Cgo driver, noticeably faster on large sheets when a C toolchain is
// available.
const sqliteDriver = "sqlite3"
