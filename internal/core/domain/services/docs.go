// Package services provides the stateless domain services of the pricing engine.
//
// The package includes:
//   - PriceCalculator: prices one delivery for one vehicle type
//   - TravelTimeEstimator: estimates door-to-door minutes for one vehicle type
//   - VehicleOptionRanker: prices every vehicle type and recommends the cheapest eligible one
//
// None of the services read the clock or perform I/O. Time-of-day and weather are
// passed in as pricing.Conditions by the caller.
package services
