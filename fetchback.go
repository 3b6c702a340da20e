/*
Package fetchback decides how server-generated column values become known to
the caller after an INSERT or UPDATE, and plans the statement shapes that go
with each decision.

A write touching a column with a server-generated default has four ways of
learning the stored value:

  - None: the caller supplied the value, nothing to fetch.
  - Returning: the value is captured in the same statement via RETURNING.
  - PreExecute: the value is computed with a separate SELECT before the write.
  - PostSelect / PostSelectDeferred: the value is fetched with a separate
    SELECT after the write, either immediately or on next access.

Decide picks between them from the column role and the backend capabilities.
The orm subpackage maps Go structs to columns and executes the resulting
plans against any connection that implements Conn.
*/
package fetchback

import (
	"log"

	"github.com/fetchback/fetchback/internal"
)

// SetLogger sets the logger used for warnings and debug messages.
func SetLogger(logger *log.Logger) {
	internal.Logger = logger
}

// SetQueryLogger sets the logger that receives every emitted query.
func SetQueryLogger(logger *log.Logger) {
	internal.QueryLogger = logger
}
