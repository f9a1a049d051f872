package scenario

import "slices"

// Limits on simulation sizing. Trial counts above MaxTrials are rejected by
// the validator so the largest permitted run stays within interactive latency.
const (
	MaxTrials     = 200000
	DefaultTrials = 10000
)

// PricingMode selects how a farm's price multiplier is drawn: per-type
// discount ranges, or the two-component full-price/discount mixture. The two
// schemes are mutually exclusive within a scenario.
type PricingMode string

const (
	ModeSimple  PricingMode = "simple"
	ModeMixture PricingMode = "mixture"
)

// Distribution names accepted by the mixture pricing model.
const (
	FullPriceFixed  = "fixed"
	FullPriceNormal = "normal"
	DiscountUniform = "uniform"
	DiscountBeta    = "beta"
)

// FarmType is a purchasing category: a market-share weight plus a range of
// percentage discounts off last year's average price.
type FarmType struct {
	ID           int     `yaml:"id"`
	Name         string  `yaml:"name"`
	SharePercent float64 `yaml:"share_percent"`
	MinDiscount  float64 `yaml:"min_discount"`
	MaxDiscount  float64 `yaml:"max_discount"`
}

// MultiplierRange converts the discount percentages into the price-multiplier
// interval [1-maxDiscount/100, 1-minDiscount/100].
func (ft FarmType) MultiplierRange() (lo, hi float64) {
	return 1 - ft.MaxDiscount/100, 1 - ft.MinDiscount/100
}

// MixtureParams configures the two-component price model: a Bernoulli split
// between a full-price group and a discount group, each with its own
// distribution.
type MixtureParams struct {
	// PFullPrice is the probability that a farm lands in the full-price group.
	PFullPrice float64 `yaml:"p_full_price"`

	// FullPriceDistribution is "fixed" (constant FullPriceValue, default 1.0)
	// or "normal" (mean/std, clipped to [0, 2]).
	FullPriceDistribution string  `yaml:"full_price_distribution"`
	FullPriceValue        float64 `yaml:"full_price_value"`
	FullPriceMean         float64 `yaml:"full_price_mean"`
	FullPriceStd          float64 `yaml:"full_price_std"`

	// DiscountDistribution is "uniform" over [MinMultiplier, 1) or "beta"
	// (Alpha/Beta shape, rescaled linearly onto [MinMultiplier, 1)).
	DiscountDistribution string  `yaml:"discount_distribution"`
	MinMultiplier        float64 `yaml:"min_multiplier"`
	Alpha                float64 `yaml:"alpha"`
	Beta                 float64 `yaml:"beta"`
}

// Scenario is one named purchasing configuration. It is plain data: the
// simulation pipeline never mutates it, and any session state (active
// selection, cached results) belongs to the caller.
type Scenario struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`

	LastYearCost  float64 `yaml:"last_year_cost"`
	LastYearFarms int     `yaml:"last_year_farms"`

	MinNewFarms int `yaml:"min_new_farms"`
	MaxNewFarms int `yaml:"max_new_farms"`

	Trials int `yaml:"trials"`

	Mode    PricingMode    `yaml:"mode"`
	Mixture *MixtureParams `yaml:"mixture,omitempty"`

	FarmTypes []FarmType `yaml:"farm_types"`
}

// Default returns the reference starting configuration: last year's spend
// across 30 farms, an uncertain 20-40 farm mix this year, and three farm
// types whose shares sum to 100.
func Default() *Scenario {
	return &Scenario{
		ID:            1,
		Name:          "Base case",
		LastYearCost:  1_000_000,
		LastYearFarms: 30,
		MinNewFarms:   20,
		MaxNewFarms:   40,
		Trials:        DefaultTrials,
		Mode:          ModeSimple,
		FarmTypes: []FarmType{
			{ID: 1, Name: "Wholesale orchard", SharePercent: 50, MinDiscount: 5, MaxDiscount: 15},
			{ID: 2, Name: "Co-op", SharePercent: 30, MinDiscount: 10, MaxDiscount: 25},
			{ID: 3, Name: "Direct grower", SharePercent: 20, MinDiscount: 0, MaxDiscount: 10},
		},
	}
}

// Duplicate deep-copies the scenario under a new id and name. Computed
// results are never part of the scenario, so nothing carries over besides
// the configuration itself.
func (s *Scenario) Duplicate(id int, name string) *Scenario {
	c := *s
	c.ID = id
	c.Name = name
	c.FarmTypes = slices.Clone(s.FarmTypes)
	if s.Mixture != nil {
		m := *s.Mixture
		c.Mixture = &m
	}
	return &c
}

// AddFarmType appends a new type with a stable id (one past the highest id in
// use, so ids survive removals and edits) and returns a pointer to it for
// further field edits.
func (s *Scenario) AddFarmType(name string) *FarmType {
	id := 0
	for _, ft := range s.FarmTypes {
		if ft.ID > id {
			id = ft.ID
		}
	}
	s.FarmTypes = append(s.FarmTypes, FarmType{ID: id + 1, Name: name})
	return &s.FarmTypes[len(s.FarmTypes)-1]
}

// RemoveFarmType deletes the type with the given id. Returns false if no such
// type exists.
func (s *Scenario) RemoveFarmType(id int) bool {
	for i, ft := range s.FarmTypes {
		if ft.ID == id {
			s.FarmTypes = slices.Delete(s.FarmTypes, i, i+1)
			return true
		}
	}
	return false
}

// ShareWeights returns the raw sharePercent weights in farm-type order. The
// weights are not normalized here; categorical selection normalizes
// internally.
func (s *Scenario) ShareWeights() []float64 {
	weights := make([]float64, len(s.FarmTypes))
	for i, ft := range s.FarmTypes {
		weights[i] = ft.SharePercent
	}
	return weights
}

// AvgPriceLastYear is last year's average spend per farm, the baseline every
// multiplier is applied to.
func (s *Scenario) AvgPriceLastYear() float64 {
	return s.LastYearCost / float64(s.LastYearFarms)
}
