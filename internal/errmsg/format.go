// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpBatchesLoad       Op = "load batches"
	OpBatchLoad         Op = "load batch details"
	OpSubjectLoad       Op = "load subject contents"
	OpChapterLoad       Op = "load chapter contents"
	OpAnnouncementsLoad Op = "load announcements"
	OpEnroll            Op = "enroll in batch"

	// Authentication operations
	OpOTPRequest  Op = "request login code"
	OpOTPVerify   Op = "verify login code"
	OpSessionLoad Op = "restore session"
	OpSignOut     Op = "sign out"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Progress operations
	OpProgressLoad Op = "load watch progress"
	OpProgressSave Op = "save watch progress"

	// Quiz operations
	OpQuizLoad   Op = "load quiz"
	OpQuizSubmit Op = "submit quiz"

	// State operations
	OpStateLoad Op = "load saved state"
	OpStateSave Op = "save state"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
