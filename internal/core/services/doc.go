// Package services implements the core application logic.
//
// Services implement the driving ports and depend only on domain types
// and driven ports. Infrastructure (HTTP, OAuth, the terminal) never
// leaks in; it is injected as interfaces.
//
//   - Session: the in-memory event store for one run of the tool
//   - ExtractionService: the capture -> prompt -> model -> parse pipeline
//   - SubmissionService: maps a reviewed event into the calendar
//   - SettingsService: typed access over the ConfigStore
package services
