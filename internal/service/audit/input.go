package audit

import (
	"fmt"
	"net/mail"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

// Input is a raw audit form as submitted by a client. The set of
// implementations is closed: *FireInput, *LadderInput, *CustodialInput,
// *LandscapingInput.
type Input interface {
	AuditType() domain.AuditType
	common() *Common
	details(v *validator) domain.Details
	sections() []section
}

// NewInput returns an empty input of the given type, ready for JSON decoding.
func NewInput(t domain.AuditType) (Input, error) {
	switch t {
	case domain.AuditTypeFire:
		return &FireInput{}, nil
	case domain.AuditTypeLadder:
		return &LadderInput{}, nil
	case domain.AuditTypeCustodial:
		return &CustodialInput{}, nil
	case domain.AuditTypeLandscaping:
		return &LandscapingInput{}, nil
	}
	return nil, domain.NewValidationError("type", fmt.Sprintf("Unknown audit type %q", string(t)))
}

// Common holds the fields every audit form shares.
type Common struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Location        string     `json:"location"`
	AuditDate       *time.Time `json:"auditDate,omitempty"`
	Observations    string     `json:"observations"`
	Recommendations string     `json:"recommendations"`
	Signature       string     `json:"signature"`
}

func (c *Common) common() *Common { return c }

// MonthYear is a month/year pair as typed into the form.
type MonthYear struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// FireInput is the fire extinguisher audit form.
type FireInput struct {
	Common
	ExtinguisherLocation string           `json:"extinguisherLocation"`
	SerialNumber         string           `json:"serialNumber"`
	ManufactureDate      MonthYear        `json:"manufactureDate"`
	ExpiryDate           MonthYear        `json:"expiryDate"`
	Type                 *string          `json:"type"`
	Size                 string           `json:"size"`
	Rating               *string          `json:"rating"`
	InspectionResults    map[string]*bool `json:"inspectionResults"`
	MaintenanceTagPhoto  string           `json:"maintenanceTagPhoto"`
	OverallCondition     *string          `json:"overallCondition"`
}

func (*FireInput) AuditType() domain.AuditType { return domain.AuditTypeFire }

func (in *FireInput) details(v *validator) domain.Details {
	d := &domain.FireDetails{}
	d.ExtinguisherLocation = v.required("extinguisherLocation", in.ExtinguisherLocation, "Extinguisher location is required")
	d.SerialNumber = v.required("serialNumber", in.SerialNumber, "Serial number is required")
	d.ManufactureDate = v.monthYear("manufactureDate", in.ManufactureDate)
	d.ExpiryDate = v.monthYear("expiryDate", in.ExpiryDate)
	d.ExtinguisherType = v.selection("type", in.Type, "Type is required")
	d.Size = v.required("size", in.Size, "Size is required")
	d.Rating = v.selection("rating", in.Rating, "Rating is required")
	d.Inspection = v.checklist("inspectionResults", in.InspectionResults, domain.FireChecklist)
	d.MaintenanceTagPhoto = v.image("maintenanceTagPhoto", in.MaintenanceTagPhoto, "Maintenance tag photo is not a valid image")
	d.OverallCondition = v.condition("overallCondition", in.OverallCondition)
	return d
}

// LadderInput is the ladder audit form.
type LadderInput struct {
	Common
	LadderLocation    string           `json:"ladderLocation"`
	ReferenceNumber   string           `json:"referenceNumber"`
	Type              string           `json:"type"`
	Length            string           `json:"length"`
	Construction      string           `json:"construction"`
	Class             string           `json:"class"`
	InspectionResults map[string]*bool `json:"inspectionResults"`
	OtherDefects      string           `json:"otherDefects"`
	DefectPhoto       string           `json:"defectPhoto"`
	OverallCondition  *string          `json:"overallCondition"`
}

func (*LadderInput) AuditType() domain.AuditType { return domain.AuditTypeLadder }

func (in *LadderInput) details(v *validator) domain.Details {
	d := &domain.LadderDetails{}
	d.LadderLocation = v.required("ladderLocation", in.LadderLocation, "Ladder location is required")
	d.ReferenceNumber = v.required("referenceNumber", in.ReferenceNumber, "Reference number is required")
	d.LadderType = v.required("type", in.Type, "Ladder type is required")
	d.Length = v.required("length", in.Length, "Length is required")
	d.Construction = v.required("construction", in.Construction, "Construction type is required")
	d.Class = v.required("class", in.Class, "Class is required")
	d.Inspection = v.checklist("inspectionResults", in.InspectionResults, domain.LadderChecklist)
	d.OtherDefects = strings.TrimSpace(in.OtherDefects)
	d.DefectPhoto = v.image("defectPhoto", in.DefectPhoto, "Defect photo is not a valid image")
	d.OverallCondition = v.condition("overallCondition", in.OverallCondition)
	return d
}

// AreaInput is the shape shared by the area-rated forms: a rating per
// inspected area plus free-text comments.
type AreaInput struct {
	Common
	InspectionResults map[string]*int `json:"inspectionResults"`
	Comments          string          `json:"comments"`
}

// CustodialInput is the custodial audit form.
type CustodialInput struct{ AreaInput }

func (*CustodialInput) AuditType() domain.AuditType { return domain.AuditTypeCustodial }

func (in *CustodialInput) details(v *validator) domain.Details {
	return &domain.CustodialDetails{
		Ratings:  v.ratings("inspectionResults", in.InspectionResults, domain.CustodialAreas),
		Comments: strings.TrimSpace(in.Comments),
	}
}

// LandscapingInput is the landscaping audit form.
type LandscapingInput struct{ AreaInput }

func (*LandscapingInput) AuditType() domain.AuditType { return domain.AuditTypeLandscaping }

func (in *LandscapingInput) details(v *validator) domain.Details {
	return &domain.LandscapingDetails{
		Ratings:  v.ratings("inspectionResults", in.InspectionResults, domain.LandscapingAreas),
		Comments: strings.TrimSpace(in.Comments),
	}
}

// Validate checks a raw form and converts it into a Submission.
// Every violated rule is collected; the first one leads the error message.
func (s *Service) Validate(in Input) (*domain.Submission, error) {
	if in == nil {
		return nil, domain.NewValidationError("type", "Unknown audit type")
	}

	v := &validator{}
	c := in.common()

	name := domain.NormalizeName(c.Name)
	if name == "" {
		v.add("name", "Name is required")
	}
	email := v.email("email", c.Email, s.emailDomain)
	location := domain.NormalizeName(c.Location)
	if location == "" {
		v.add("location", "Location is required")
	}

	details := in.details(v)

	recommendations := v.required("recommendations", c.Recommendations, "Recommendations are required")
	signature := v.required("signature", c.Signature, "Signature is required")
	if signature != "" {
		v.image("signature", signature, "Signature is not a valid image")
	}

	if len(v.errs) > 0 {
		return nil, domain.NewValidationErrors(v.errs)
	}

	auditDate := s.now().UTC()
	if c.AuditDate != nil && !c.AuditDate.IsZero() {
		auditDate = c.AuditDate.UTC()
	}

	return &domain.Submission{
		Type:            in.AuditType(),
		Auditor:         domain.Auditor{Email: email, Name: name},
		LocationName:    location,
		AuditDate:       auditDate,
		Observations:    strings.TrimSpace(c.Observations),
		Recommendations: recommendations,
		Signature:       signature,
		Details:         details,
	}, nil
}

// validator accumulates field errors in the order rules are checked.
type validator struct {
	errs []domain.FieldError
}

func (v *validator) add(field, msg string) {
	v.errs = append(v.errs, domain.FieldError{Field: field, Message: msg})
}

// required returns the trimmed value, recording msg when it is blank.
func (v *validator) required(field, value, msg string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(field, msg)
	}
	return value
}

// selection is required for nullable single-choice fields.
func (v *validator) selection(field string, value *string, msg string) string {
	if value == nil {
		v.add(field, msg)
		return ""
	}
	return v.required(field, *value, msg)
}

// image accepts an empty value or a data URI whose payload decodes, so a
// bad photo is rejected before anything is written.
func (v *validator) image(field, value, msg string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if _, err := domain.DecodeDataURI(value); err != nil {
		v.add(field, msg)
	}
	return value
}

// email returns the lower-cased address when it is well-formed and on the
// company domain.
func (v *validator) email(field, raw, company string) string {
	email := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		v.add(field, "Invalid email address")
		return ""
	}

	email = domain.NormalizeEmail(email)
	if !strings.HasSuffix(email, "@"+strings.ToLower(company)) {
		v.add(field, fmt.Sprintf("Must use company email address (@%s)", company))
	}
	return email
}

func (v *validator) monthYear(field string, in MonthYear) domain.MonthYear {
	var out domain.MonthYear

	month, err := strconv.Atoi(strings.TrimSpace(in.Month))
	if err != nil || month < 1 || month > 12 {
		v.add(field+".month", "Month is required")
	} else {
		out.Month = month
	}

	yearStr := strings.TrimSpace(in.Year)
	year, err := strconv.Atoi(yearStr)
	if err != nil || len(yearStr) < 4 || year <= 0 {
		v.add(field+".year", "Valid year is required")
	} else {
		out.Year = year
	}

	return out
}

// checklist requires an answer (true, false or null) for every item and
// rejects items outside the catalog.
func (v *validator) checklist(field string, results map[string]*bool, items []domain.ChecklistItem) map[string]domain.Outcome {
	out := make(map[string]domain.Outcome, len(items))

	missing := false
	for _, item := range items {
		answer, ok := results[item.ID]
		if !ok {
			missing = true
			continue
		}
		out[item.ID] = domain.OutcomeFromBool(answer)
	}
	if missing {
		v.add(field, "Please complete all inspection items")
	}

	for _, key := range sortedKeys(results) {
		if !slices.ContainsFunc(items, func(it domain.ChecklistItem) bool { return it.ID == key }) {
			v.add(field+"."+key, "Unknown inspection item")
		}
	}

	return out
}

func (v *validator) condition(field string, value *string) *domain.Condition {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	c := domain.Condition(strings.ToLower(strings.TrimSpace(*value)))
	if !c.IsValid() {
		v.add(field, "Overall condition must be pass or fail")
		return nil
	}
	return &c
}

// ratings returns one AreaRating per submitted area, in catalog order.
// No minimum number of rated areas is enforced.
func (v *validator) ratings(field string, results map[string]*int, areas []string) []domain.AreaRating {
	out := make([]domain.AreaRating, 0, len(results))
	for _, area := range areas {
		rating, ok := results[area]
		if !ok {
			continue
		}
		if rating != nil && (*rating < domain.MinRating || *rating > domain.MaxRating) {
			v.add(field+"."+area, fmt.Sprintf("Rating must be between %d and %d", domain.MinRating, domain.MaxRating))
			continue
		}
		var r *int
		if rating != nil {
			val := *rating
			r = &val
		}
		out = append(out, domain.AreaRating{AreaName: area, Rating: r})
	}

	for _, key := range sortedKeys(results) {
		if !slices.Contains(areas, key) {
			v.add(field+"."+key, "Unknown inspection area: "+key)
		}
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
