// Package main provides the entry point of the Open Notebook web shell.
// It serves the application chrome with Fiber: a login page and the
// collapsible navigation sidebar with per user collapse and theme preferences
// stored through gorm, a one-shot platform detection for the quick actions
// shortcut, and a terminal preview of the sidebar via the render command.
package main
