// Package services provides domain services of the ordering system that do not belong
// to a single aggregate.
//
// The package includes:
//   - Policy: the authorization policy mapping (principal, operation, resource) to
//     allow or a typed denial
//
// Policy is pure: it reads only the principal handed to it and the resource passed in,
// never the store, so application handlers can call it before and after loading data.
package services
