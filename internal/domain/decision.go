package domain

// Decision is the confirmation gate's verdict for a deletion request.
type Decision int

const (
	// DecisionFileOnly deletes the attachment and leaves every folder alone.
	DecisionFileOnly Decision = iota
	// DecisionSilent runs the full cascade without asking.
	DecisionSilent
	// DecisionConfirm requires the user to pick a Choice first.
	DecisionConfirm
)

func (d Decision) String() string {
	switch d {
	case DecisionFileOnly:
		return "file-only"
	case DecisionSilent:
		return "silent"
	case DecisionConfirm:
		return "confirm"
	}
	return "unknown"
}

// Choice is the user's answer to the cascade confirmation modal.
type Choice int

const (
	ChoiceCancel Choice = iota
	ChoiceFileOnly
	ChoiceAll
)

// Decide applies the risk policy to a computed plan. Deterministic in its
// inputs: cascade disabled or an empty plan means file-only; disabled
// warnings or a plan shorter than the threshold proceed silently; a plan at
// or above the threshold requires confirmation.
func Decide(planLen int, s Settings) Decision {
	if !s.EnableCascade || planLen == 0 {
		return DecisionFileOnly
	}
	if !s.EnableWarning {
		return DecisionSilent
	}
	if planLen < s.WarningThreshold {
		return DecisionSilent
	}
	return DecisionConfirm
}
