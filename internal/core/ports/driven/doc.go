// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PageSource: Captures a snapshot of a web page
//   - LLMService: Extracts text completions from the model API
//   - CalendarService: Inserts events into the external calendar
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - TokenProvider: Bearer credentials for the calendar service. A nil
//     provider makes submission fail with domain.ErrAuthFailed; extraction
//     is unaffected.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
