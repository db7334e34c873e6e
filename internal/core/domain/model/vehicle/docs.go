// Package vehicle holds the registry of courier conveyances: boda boda, tuk tuk,
// car, van and pickup truck. Each type has a static profile (fares, speed and
// carrying capacity) and a display entry for the vehicle picker.
//
// The registry order returned by Types is significant: the option ranker walks it
// in that order and uses it to break price ties.
package vehicle
