// Package process tears down the headless browser used for PDF export.
// The kill is best-effort; callers still ask the launcher to kill the
// browser afterwards.
package process
