// Package services provides domain services of the pickup order core: rules
// that need more than one aggregate to decide.
//
// The package includes:
//   - EligibilityPolicy: decides whether a member may place another order on a day
package services
