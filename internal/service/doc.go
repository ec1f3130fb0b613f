// Package service contains the application use cases that sit between the
// delivery mechanisms (HTTP handlers, the CLI) and the pure calculation
// packages under internal/domain.
//
// The service layer owns the in-process contract of the application:
//
// 1. Service Interfaces:
//   - ReadingService exposes pillar calculation, five-element analysis,
//     star evaluation and the combined reading
//   - Each operation takes a context so request-scoped loggers and
//     cancellation flow through
//
// 2. Orchestration:
//   - A reading calculates the chart once and then runs the element
//     analyzer and the star engine concurrently, since neither depends on
//     the other
//
// 3. Dependency Management:
//   - Services receive the domain calculators through constructor injection
//     so tests can substitute mocks
//
// 4. Error Handling:
//   - Domain errors are wrapped in *ServiceError; errors.Is still matches
//     domain.ErrParse and domain.ErrComputation so the API layer can map them
//   - Birth data is redacted before any error detail is logged
package service
