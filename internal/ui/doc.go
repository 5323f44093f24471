// Package ui renders kasactl's terminal output: styled result boxes,
// confirmation prompts for destructive plug operations, and the live
// energy watch view.
package ui
