// Package domain defines the core business entities for PageCal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PageSnapshot: Captured content of a single web page
//   - EventRecord: A structured event extracted from a page
//   - CalendarEntry: The result of inserting an event into a calendar
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
