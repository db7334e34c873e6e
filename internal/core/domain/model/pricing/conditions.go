package pricing

import "time"

var nairobiLocation = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		return time.FixedZone("Africa/Nairobi", 3*60*60)
	}
	return loc
}

// Location returns the Africa/Nairobi time zone used for peak and night hours.
func Location() *time.Location {
	return nairobiLocation
}

// Conditions are the circumstances of a delivery that attract surcharges.
// The zero value means off-peak, daytime and dry.
type Conditions struct {
	peakHour bool
	night    bool
	raining  bool
}

func NewConditions(peakHour, night, raining bool) Conditions {
	return Conditions{peakHour: peakHour, night: night, raining: raining}
}

// ConditionsAt derives peak and night flags from the hour of t in Nairobi.
// Peak hours are 07:00-09:59 and 17:00-20:59, night is 21:00-05:59.
func ConditionsAt(t time.Time, raining bool) Conditions {
	hour := t.In(nairobiLocation).Hour()
	return Conditions{
		peakHour: (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 20),
		night:    hour >= 21 || hour < 6,
		raining:  raining,
	}
}

func (c Conditions) IsPeakHour() bool {
	return c.peakHour
}

func (c Conditions) IsNight() bool {
	return c.night
}

func (c Conditions) IsRaining() bool {
	return c.raining
}

// Surcharges lists the applicable surcharges in the order peak, night, rain.
func (c Conditions) Surcharges() []Surcharge {
	var out []Surcharge
	if c.peakHour {
		out = append(out, PeakHourSurcharge)
	}
	if c.night {
		out = append(out, NightSurcharge)
	}
	if c.raining {
		out = append(out, RainSurcharge)
	}
	return out
}
