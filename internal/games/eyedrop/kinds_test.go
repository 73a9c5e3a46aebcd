package eyedrop

import "testing"

func TestConditionTreatmentBijection(t *testing.T) {
	seen := make(map[Treatment]Condition)
	for _, c := range Conditions() {
		req := c.Requires()
		if !req.Valid() {
			t.Fatalf("%s requires invalid treatment %d", c, req)
		}
		if prev, dup := seen[req]; dup {
			t.Errorf("%s and %s both require %s", prev, c, req)
		}
		seen[req] = c
	}
	if len(seen) != len(Treatments()) {
		t.Errorf("mapped %d treatments, want %d", len(seen), len(Treatments()))
	}
}

func TestConditionRequires(t *testing.T) {
	tests := []struct {
		cond Condition
		want Treatment
	}{
		{ConditionDryEye, TreatmentLubricant},
		{ConditionAllergicConjunctivitis, TreatmentAntihistaminic},
		{ConditionSoreEye, TreatmentDecongestant},
		{ConditionRedEyes, TreatmentCS},
		{ConditionGlaucoma, TreatmentTS},
	}
	for _, tt := range tests {
		if got := tt.cond.Requires(); got != tt.want {
			t.Errorf("%s.Requires() = %s, want %s", tt.cond, got, tt.want)
		}
	}
}

func TestParseTreatment(t *testing.T) {
	for _, tr := range Treatments() {
		got, ok := ParseTreatment(tr.String())
		if !ok || got != tr {
			t.Errorf("ParseTreatment(%q) = %v, %v", tr.String(), got, ok)
		}
	}
	if _, ok := ParseTreatment("saline"); ok {
		t.Error("ParseTreatment accepted an unknown name")
	}
}

func TestInvalidKinds(t *testing.T) {
	if Treatment(-1).Valid() || Treatment(5).Valid() {
		t.Error("out of range treatment reported valid")
	}
	if Condition(5).Valid() {
		t.Error("out of range condition reported valid")
	}
	if Treatment(9).String() != "unknown" {
		t.Errorf("Treatment(9).String() = %q", Treatment(9).String())
	}
}
