// Package convert provides value-level converters and the combinators that
// lift them over record fields and lists. Converters are plain functions;
// FieldConverter and Conversions close over their configuration at
// construction time and are safe to reuse across records.
package convert
