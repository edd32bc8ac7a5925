package domain

// Condition is the physical state of an inventory item. It is a closed set:
// decoding any other label is a validation error, never a fallback.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionOpenBox Condition = "OPEN_BOX"
	ConditionUsed    Condition = "USED"
)

// Conditions lists every valid condition label
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionOpenBox, ConditionUsed}
}

// ParseCondition converts a symbolic label into a Condition
func ParseCondition(value string) (Condition, error) {
	switch Condition(value) {
	case ConditionNew, ConditionOpenBox, ConditionUsed:
		return Condition(value), nil
	}
	return "", NewInvalidEnumError("condition", value)
}

// Valid reports whether the condition is one of the known labels
func (c Condition) Valid() bool {
	_, err := ParseCondition(string(c))
	return err == nil
}

func (c Condition) String() string {
	return string(c)
}
