package scenario

import (
	"strings"
	"testing"
)

func validScenario() *Scenario {
	return Default()
}

func TestValidate_DefaultIsValid(t *testing.T) {
	ok, errs := Validate(validScenario())
	if !ok {
		t.Fatalf("Expected default scenario to validate, got errors: %v", errs)
	}
}

func TestValidate_ReportsAllErrorsIndependently(t *testing.T) {
	// Three independent problems at once: min > max, trials out of range,
	// shares summing to 80. None of them may mask the others.
	s := validScenario()
	s.MinNewFarms = 10
	s.MaxNewFarms = 5
	s.Trials = 300000
	s.FarmTypes = []FarmType{
		{ID: 1, Name: "A", SharePercent: 50, MinDiscount: 5, MaxDiscount: 10},
		{ID: 2, Name: "B", SharePercent: 30, MinDiscount: 5, MaxDiscount: 10},
	}

	ok, errs := Validate(s)
	if ok {
		t.Fatal("Expected validation to fail")
	}
	if len(errs) < 3 {
		t.Fatalf("Expected at least 3 independent errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"newFarms", "trials", "sharePercent"} {
		if _, present := errs[field]; !present {
			t.Errorf("Expected an error for field %q, got %v", field, errs)
		}
	}
}

func TestValidate_ShareSumMessageIncludesComputedSum(t *testing.T) {
	s := validScenario()
	s.FarmTypes[0].SharePercent = 30.25 // 50 -> 30.25, sum 80.25

	_, errs := Validate(s)
	msg, present := errs["sharePercent"]
	if !present {
		t.Fatalf("Expected a sharePercent error, got %v", errs)
	}
	if !strings.Contains(msg, "80.2") && !strings.Contains(msg, "80.3") {
		t.Errorf("Expected message to include the computed sum at one decimal, got %q", msg)
	}
}

func TestValidate_ShareSumTolerance(t *testing.T) {
	cases := []struct {
		name  string
		first float64 // replaces the default 50% share
		ok    bool
	}{
		{"exact", 50, true},
		{"withinTolerance", 50.4, true},
		{"onTolerance", 50.5, true},
		{"beyondTolerance", 50.6, false},
		{"lowBeyondTolerance", 49.4, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validScenario()
			s.FarmTypes[0].SharePercent = tc.first
			ok, errs := Validate(s)
			if ok != tc.ok {
				t.Errorf("share %v: expected ok=%v, got %v (errors %v)", tc.first, tc.ok, ok, errs)
			}
		})
	}
}

func TestValidate_PositiveFields(t *testing.T) {
	s := validScenario()
	s.LastYearCost = 0
	s.LastYearFarms = -1
	s.MinNewFarms = 0
	s.MaxNewFarms = 0
	s.Trials = 0

	ok, errs := Validate(s)
	if ok {
		t.Fatal("Expected validation to fail")
	}
	for _, field := range []string{"lastYearCost", "lastYearFarms", "minNewFarms", "maxNewFarms", "trials"} {
		if _, present := errs[field]; !present {
			t.Errorf("Expected an error for field %q, got %v", field, errs)
		}
	}
}

func TestValidate_FarmTypeFields(t *testing.T) {
	s := validScenario()
	s.FarmTypes = []FarmType{
		{ID: 7, Name: "Broken", SharePercent: 120, MinDiscount: 60, MaxDiscount: 40},
	}

	ok, errs := Validate(s)
	if ok {
		t.Fatal("Expected validation to fail")
	}
	for _, field := range []string{"farmType.7.sharePercent", "farmType.7.discountRange"} {
		if _, present := errs[field]; !present {
			t.Errorf("Expected an error for field %q, got %v", field, errs)
		}
	}
}

func TestValidate_NoFarmTypes(t *testing.T) {
	s := validScenario()
	s.FarmTypes = nil

	ok, errs := Validate(s)
	if ok {
		t.Fatal("Expected validation to fail")
	}
	if _, present := errs["farmTypes"]; !present {
		t.Errorf("Expected a farmTypes error, got %v", errs)
	}
}

func TestValidate_MixtureParams(t *testing.T) {
	s := validScenario()
	s.Mode = ModeMixture
	s.Mixture = &MixtureParams{
		PFullPrice:           1.5,
		DiscountDistribution: DiscountBeta,
		MinMultiplier:        1.0,
		Alpha:                0,
		Beta:                 -1,
	}

	ok, errs := Validate(s)
	if ok {
		t.Fatal("Expected validation to fail")
	}
	for _, field := range []string{"mixture.pFullPrice", "mixture.minMultiplier", "mixture.alpha", "mixture.beta"} {
		if _, present := errs[field]; !present {
			t.Errorf("Expected an error for field %q, got %v", field, errs)
		}
	}
	if msg := errs["mixture.minMultiplier"]; !strings.Contains(msg, "less than 1.0") {
		t.Errorf("Expected the explicit 'less than 1.0' wording, got %q", msg)
	}
}

func TestValidate_MixtureParamsMissing(t *testing.T) {
	s := validScenario()
	s.Mode = ModeMixture
	s.Mixture = nil

	ok, errs := Validate(s)
	if ok {
		t.Fatal("Expected validation to fail")
	}
	if _, present := errs["mixture"]; !present {
		t.Errorf("Expected a mixture error, got %v", errs)
	}
}

func TestValidate_MixtureDoesNotRequireBetaShapesForUniform(t *testing.T) {
	s := validScenario()
	s.Mode = ModeMixture
	s.Mixture = &MixtureParams{
		PFullPrice:           0.4,
		DiscountDistribution: DiscountUniform,
		MinMultiplier:        0.7,
	}

	if ok, errs := Validate(s); !ok {
		t.Fatalf("Expected uniform mixture scenario to validate, got %v", errs)
	}
}
