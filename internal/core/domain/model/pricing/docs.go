// Package pricing holds the tariff constants and result records of the delivery
// pricing engine: surcharge conditions, parcel multipliers, the price breakdown,
// the travel-time estimate and the ranked vehicle option.
//
// Amounts are kept as float64 through the arithmetic and rounded to whole
// shillings only when a Breakdown is built.
package pricing
