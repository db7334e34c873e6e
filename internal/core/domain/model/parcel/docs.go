// Package parcel models what the customer declares about a shipment: its size tier,
// weight tier and the number of identical items.
//
// Tiers are ordered. Vehicle eligibility compares tiers by ordinal, so a vehicle that
// carries a tier also carries every lower tier:
//
//	Small < Medium < Large < ExtraLarge
//	Light < MediumWeight < Heavy < VeryHeavy
package parcel
