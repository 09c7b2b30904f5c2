// Package services provides the domain services of the ordering system.
//
// The package includes:
//   - OrderDomainService: sequences Order lifecycle operations for each saga step
//     and returns the event describing the step
//
// Domain services never persist or publish; the application layer stores the
// order and its event in one unit of work.
package services
