// Package monitor renders distance-field state for humans: PNG slice
// heatmaps, an HTML heatmap page, and summary statistics. Everything
// here reads the field through its lazy enumeration and never mutates
// engine state.
package monitor
