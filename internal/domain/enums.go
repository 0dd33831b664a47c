package domain

// AuditType identifies which inspection form an audit was captured with.
type AuditType string

const (
	AuditTypeFire        AuditType = "fire"
	AuditTypeLadder      AuditType = "ladder"
	AuditTypeCustodial   AuditType = "custodial"
	AuditTypeLandscaping AuditType = "landscaping"
)

func (t AuditType) String() string { return string(t) }

func (t AuditType) IsValid() bool {
	switch t {
	case AuditTypeFire, AuditTypeLadder, AuditTypeCustodial, AuditTypeLandscaping:
		return true
	}
	return false
}

// AllAuditTypes lists every audit type in display order.
func AllAuditTypes() []AuditType {
	return []AuditType{AuditTypeFire, AuditTypeLadder, AuditTypeCustodial, AuditTypeLandscaping}
}

// Outcome is the tri-state result of a yes/no checklist item.
type Outcome string

const (
	OutcomePass          Outcome = "pass"
	OutcomeFail          Outcome = "fail"
	OutcomeNotApplicable Outcome = "n/a"
)

func (o Outcome) String() string { return string(o) }

// OutcomeFromBool maps the form representation (true/false/null) to an Outcome.
func OutcomeFromBool(v *bool) Outcome {
	switch {
	case v == nil:
		return OutcomeNotApplicable
	case *v:
		return OutcomePass
	default:
		return OutcomeFail
	}
}

// Bool returns the storage representation: true, false, or nil for N/A.
func (o Outcome) Bool() *bool {
	var b bool
	switch o {
	case OutcomePass:
		b = true
	case OutcomeFail:
		b = false
	default:
		return nil
	}
	return &b
}

// Condition is the overall verdict on a piece of equipment.
type Condition string

const (
	ConditionPass Condition = "pass"
	ConditionFail Condition = "fail"
)

func (c Condition) String() string { return string(c) }

func (c Condition) IsValid() bool {
	return c == ConditionPass || c == ConditionFail
}

// Rating scale for custodial and landscaping areas. A nil rating means
// the area has not been rated.
const (
	RatingNotApplicable   = 0
	RatingActionsRequired = 1
	RatingNumerousIssues  = 2
	RatingMinorIssues     = 3
	RatingNoIssues        = 4

	MinRating = RatingNotApplicable
	MaxRating = RatingNoIssues
)

// RatingLabel returns the human-readable label shown next to a rating.
func RatingLabel(r *int) string {
	if r == nil {
		return "Not rated"
	}
	switch *r {
	case RatingNotApplicable:
		return "N/A"
	case RatingActionsRequired:
		return "Actions Required"
	case RatingNumerousIssues:
		return "Numerous issues"
	case RatingMinorIssues:
		return "Minor issues"
	case RatingNoIssues:
		return "No issues"
	}
	return "Not rated"
}
