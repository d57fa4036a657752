package energy

import (
	"strconv"
	"strings"

	"github.com/voltly/voltly/pkg/entity"
)

// ClassifyTierBand picks the consumption band row for a monthly kWh
// figure and appends the component suffix ("te" or "tusd"). The band
// selects the row only; both components of that row get summed when
// pricing.
func ClassifyTierBand(monthlyKwh float64, preference string) string {
	return tierBand(monthlyKwh) + "_" + preference
}

func tierBand(monthlyKwh float64) string {
	switch {
	case monthlyKwh <= 30:
		return "0_30"
	case monthlyKwh <= 100:
		return "30_100"
	default:
		return "100_220"
	}
}

// Rate parses a tariff entry as a locale-tolerant decimal. Missing or
// unparseable entries price at zero so a broken tariff never fails a
// cost readout, it just contributes nothing.
func Rate(tariffs entity.TariffSet, key string) float64 {
	raw, ok := tariffs[key]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

// ComputeMonthlyCost prices a device against the location tariffs.
// TE and TUSD are both per-kWh charges, so they combine additively.
func ComputeMonthlyCost(d *entity.Device, tariffs entity.TariffSet, mode entity.TariffMode) float64 {
	kwh := NormalizeToMonthlyKwh(d)
	var te, tusd float64
	if mode == entity.TariffFlat {
		te = Rate(tariffs, "fixo_te")
		tusd = Rate(tariffs, "fixo_tusd")
	} else {
		band := tierBand(kwh)
		te = Rate(tariffs, band+"_te")
		tusd = Rate(tariffs, band+"_tusd")
	}
	return kwh * (te + tusd)
}

// AggregateLocationCost sums the monthly cost of every device in a
// location, for the cross-location comparison chart.
func AggregateLocationCost(loc *entity.Location) float64 {
	var total float64
	for _, d := range loc.Devices {
		total += ComputeMonthlyCost(d, loc.Tariffs, loc.TariffMode)
	}
	return total
}
