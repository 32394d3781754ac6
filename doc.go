// Package expenses provides the types and functions to record, aggregate and
// report personal expenses. It is designed to be local-first and auditable:
// the whole record of expenses lives in a single human-readable JSON file
// that the user owns and can version-control.
//
// The core functionalities include:
//   - Record Keeping: an append-only, ordered book of expenses, each with a
//     category, an amount in a given currency, and a date.
//   - Persistence: loading and saving the book to a flat JSON file, with a
//     clear distinction between an absent file (an empty book) and a corrupt
//     one (an error), and atomic whole-file rewrites on save.
//   - Aggregation: per-category totals, in first-seen category order, for
//     reports and charts.
//   - Currency Conversion: a small client for a remote exchange-rate service
//     converting amounts between currencies at display precision.
//
// This package serves as the foundational logic for the `xps` command-line
// tool; rendering (terminal, PDF, chart) lives in the renderer package.
package expenses
