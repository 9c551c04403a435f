// Package models defines the core domain types for the expense tracker.
//
// # Models
//
//   - User: registered account; secrets stored only as bcrypt hashes
//   - Expense: a single spending record, always owned by one user
//   - Category: display metadata for expense categories, seeded at startup
//
// # Design principles
//
//  1. Owner scoping: Expense.UserID comes from the authenticated identity,
//     never from request input.
//  2. No circular references: relationships use ID strings, not pointers.
//  3. Amounts are float64 with all rounding deferred to the analytics layer.
package models
