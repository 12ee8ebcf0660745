// Package task holds the to-do record and the ordered in-memory store that
// owns it.
//
// # Identity
//
// Every task gets a UUIDv7 ID when it is appended. The ID is the task's
// identity; its index in the store is only its display position. Indices are
// dense (0..n-1) and a removal shifts every later task down by one.
//
// # Fields
//
// None of the schedule fields are validated here:
//
//   - Day: short weekday name ("Mon")
//   - Date: day of month as text ("3")
//   - Month: short month name ("Jan")
//   - Year: 0 when never picked or not a number
//   - Time: "H:MM", 24-hour
//
// The store is not safe for concurrent use. It is owned and mutated by a
// single controller running on the UI update loop.
package task
