package scenario

import (
	"fmt"
	"math"
)

// The validator accepts share sums this far from 100 before complaining, so
// hand-entered percentages don't need to be exact to the last decimal.
const shareSumTolerance = 0.5

// Validate checks a scenario's numeric fields and farm-type shares. It
// returns ok plus a field-keyed map of human-readable messages. Checks are
// independent: every applicable error is reported in one pass, so a caller
// can surface them all at once instead of fixing fields one by one.
//
// A scenario that fails validation must not be simulated; the simulation
// entry point enforces this again and fails loudly.
func Validate(s *Scenario) (bool, map[string]string) {
	errs := make(map[string]string)

	if s.LastYearCost <= 0 {
		errs["lastYearCost"] = "must be greater than 0"
	}
	if s.LastYearFarms <= 0 {
		errs["lastYearFarms"] = "must be greater than 0"
	}
	if s.MinNewFarms <= 0 {
		errs["minNewFarms"] = "must be greater than 0"
	}
	if s.MaxNewFarms <= 0 {
		errs["maxNewFarms"] = "must be greater than 0"
	}
	if s.MinNewFarms > s.MaxNewFarms {
		errs["newFarms"] = "minimum farm count exceeds maximum"
	}
	if s.Trials <= 0 || s.Trials > MaxTrials {
		errs["trials"] = fmt.Sprintf("must be between 1 and %d", MaxTrials)
	}

	if len(s.FarmTypes) == 0 {
		errs["farmTypes"] = "at least one farm type is required"
	} else {
		sum := 0.0
		for _, ft := range s.FarmTypes {
			sum += ft.SharePercent
		}
		if math.Abs(sum-100) > shareSumTolerance {
			errs["sharePercent"] = fmt.Sprintf("shares must sum to 100%%, currently %.1f%%", sum)
		}
		for _, ft := range s.FarmTypes {
			key := fmt.Sprintf("farmType.%d", ft.ID)
			if ft.SharePercent < 0 || ft.SharePercent > 100 {
				errs[key+".sharePercent"] = "must be between 0 and 100"
			}
			if ft.MinDiscount < 0 || ft.MinDiscount > 100 {
				errs[key+".minDiscount"] = "must be between 0 and 100"
			}
			if ft.MaxDiscount < 0 || ft.MaxDiscount > 100 {
				errs[key+".maxDiscount"] = "must be between 0 and 100"
			}
			if ft.MinDiscount > ft.MaxDiscount {
				errs[key+".discountRange"] = "minimum discount exceeds maximum"
			}
		}
	}

	if s.Mode == ModeMixture {
		validateMixture(s.Mixture, errs)
	}

	return len(errs) == 0, errs
}

func validateMixture(m *MixtureParams, errs map[string]string) {
	if m == nil {
		errs["mixture"] = "mixture parameters are required in mixture mode"
		return
	}
	if m.PFullPrice < 0 || m.PFullPrice > 1 {
		errs["mixture.pFullPrice"] = "must be between 0 and 1"
	}
	if m.MinMultiplier <= 0 {
		errs["mixture.minMultiplier"] = "must be greater than 0"
	} else if m.MinMultiplier >= 1 {
		errs["mixture.minMultiplier"] = "must be less than 1.0"
	}
	if m.FullPriceDistribution == FullPriceNormal && m.FullPriceStd < 0 {
		errs["mixture.fullPriceStd"] = "must not be negative"
	}
	if m.DiscountDistribution == DiscountBeta {
		if m.Alpha <= 0 {
			errs["mixture.alpha"] = "must be greater than 0"
		}
		if m.Beta <= 0 {
			errs["mixture.beta"] = "must be greater than 0"
		}
	}
}
