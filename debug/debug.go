// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path logging helper (alloc-light)
//
// Purpose:
//   - Logs infrequent diagnostic lines without a logging framework.
//   - Used only in cold paths: CLI startup, sweep progress, I/O errors.
//
// Notes:
//   - Avoids fmt.Sprintf on the message path; plain concatenation only.
//   - Writes to stderr so stdout stays reserved for the CSV block.
//
// ⚠️ Never invoke inside a timed region — diagnostics only.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "hashmark/utils"

// DropError logs an error with its prefix tag, or just the prefix when err
// is nil (useful for tagged milestones on error-shaped call sites).
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a tagged one-line diagnostic: connection-free sibling of
// DropError for state changes and sweep progress.
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
