// Package quote contains the Quote aggregate: a delivery price computed for one
// vehicle type, held for a limited time until the customer books it.
//
// State transitions:
//
//	Open ──┬──> Booked
//	       └──> Expired
//
// Booked and Expired are final.
package quote
