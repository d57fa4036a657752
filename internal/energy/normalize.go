// Package energy holds the pure consumption and pricing math. No I/O,
// no ambient state: callers hand in entities and get numbers back.
package energy

import (
	"math"

	"github.com/voltly/voltly/pkg/entity"
)

const daysPerMonth = 30

// NormalizeToMonthlyKwh converts a device reading into kWh per month.
// A kWh reading is taken as already monthly and a kWh_year reading as a
// yearly total; neither gets multiplied by daily hours again. For V the
// power is derived from voltage, current and power factor first.
// The result is always a finite non-negative number.
func NormalizeToMonthlyKwh(d *entity.Device) float64 {
	var kwh float64
	switch d.Unit {
	case entity.UnitWatt:
		kwh = d.RawValue * d.DailyHours * daysPerMonth / 1000
	case entity.UnitKwhMonth:
		kwh = d.RawValue
	case entity.UnitKwhYear:
		kwh = d.RawValue / 12
	case entity.UnitVolt:
		if d.Voltage <= 0 || d.Current <= 0 {
			return 0
		}
		pf := d.PowerFactor
		if pf == 0 {
			pf = 1
		}
		watts := d.Voltage * d.Current * pf
		kwh = watts * d.DailyHours * daysPerMonth / 1000
	default:
		return 0
	}
	return sanitize(kwh)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
