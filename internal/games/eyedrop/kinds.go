package eyedrop

import "github.com/vovakirdan/eyedrop-invaders/internal/core"

// Treatment is the kind of eye drop a projectile carries.
type Treatment int

const (
	TreatmentLubricant Treatment = iota
	TreatmentAntihistaminic
	TreatmentDecongestant
	TreatmentCS
	TreatmentTS
	treatmentCount
)

// DefaultTreatment is selected at reset.
const DefaultTreatment = TreatmentLubricant

type treatmentInfo struct {
	name  string
	label string
	color core.Color
}

var treatments = [treatmentCount]treatmentInfo{
	TreatmentLubricant:      {"lubricant", "Lubricant", core.ColorLightBlue},
	TreatmentAntihistaminic: {"antihistaminic", "Antihistaminic", core.ColorGold},
	TreatmentDecongestant:   {"decongestant", "Decongestant", core.ColorSalmon},
	TreatmentCS:             {"cs", "CS", core.ColorCoral},
	TreatmentTS:             {"ts", "TS", core.ColorPurple},
}

// Treatments returns all treatments in slot order.
func Treatments() []Treatment {
	out := make([]Treatment, treatmentCount)
	for i := range out {
		out[i] = Treatment(i)
	}
	return out
}

// Valid reports whether t is one of the five treatments.
func (t Treatment) Valid() bool {
	return t >= 0 && t < treatmentCount
}

// String returns the wire name, e.g. "lubricant".
func (t Treatment) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return treatments[t].name
}

// Label returns the display name.
func (t Treatment) Label() string {
	if !t.Valid() {
		return "?"
	}
	return treatments[t].label
}

// Color returns the projectile color.
func (t Treatment) Color() core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return treatments[t].color
}

// ParseTreatment looks up a treatment by wire name.
func ParseTreatment(name string) (Treatment, bool) {
	for i, info := range treatments {
		if info.name == name {
			return Treatment(i), true
		}
	}
	return 0, false
}

// Condition is the eye condition a target represents.
type Condition int

const (
	ConditionDryEye Condition = iota
	ConditionAllergicConjunctivitis
	ConditionSoreEye
	ConditionRedEyes
	ConditionGlaucoma
	conditionCount
)

type conditionInfo struct {
	name     string
	label    string
	requires Treatment
	color    core.Color
}

// conditions is the fixed condition -> treatment table. Each treatment
// appears exactly once.
var conditions = [conditionCount]conditionInfo{
	ConditionDryEye:                 {"dry-eye", "Dry eye", TreatmentLubricant, core.ColorCyan},
	ConditionAllergicConjunctivitis: {"allergic-conjunctivitis", "Conjunctivitis", TreatmentAntihistaminic, core.ColorYellow},
	ConditionSoreEye:                {"sore-eye", "Sore eye", TreatmentDecongestant, core.ColorOrange},
	ConditionRedEyes:                {"red-eyes", "Rhinitis", TreatmentCS, core.ColorRed},
	ConditionGlaucoma:               {"glaucoma", "Glaucoma", TreatmentTS, core.ColorMagenta},
}

// Conditions returns all conditions in table order.
func Conditions() []Condition {
	out := make([]Condition, conditionCount)
	for i := range out {
		out[i] = Condition(i)
	}
	return out
}

// Valid reports whether c is one of the five conditions.
func (c Condition) Valid() bool {
	return c >= 0 && c < conditionCount
}

// String returns the wire name, e.g. "dry-eye".
func (c Condition) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return conditions[c].name
}

// Label returns the short display name.
func (c Condition) Label() string {
	if !c.Valid() {
		return "?"
	}
	return conditions[c].label
}

// Requires returns the treatment that cures c.
func (c Condition) Requires() Treatment {
	if !c.Valid() {
		return -1
	}
	return conditions[c].requires
}

// Color returns the target color, also used for its hit effect.
func (c Condition) Color() core.Color {
	if !c.Valid() {
		return core.ColorDefault
	}
	return conditions[c].color
}
