// Package kernel provides the shared value objects of the pricing domain:
//   - UUID: identifier for persisted aggregates such as quotes
//   - Location: a validated latitude/longitude pair
//   - Distance: a strictly positive road or great-circle distance in kilometres
//
// All of them reject their zero value on Validate, so a value that skipped its
// constructor cannot reach the pricing services.
package kernel
