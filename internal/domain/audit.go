package domain

import (
	"time"

	"github.com/google/uuid"
)

// Auditor is the person performing an audit, keyed by email.
type Auditor struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// Location is an audited site, keyed by its normalized name.
type Location struct {
	ID   uuid.UUID
	Name string
}

// Audit is the base record written once per submission.
type Audit struct {
	ID              uuid.UUID
	AuditorID       uuid.UUID
	LocationID      uuid.UUID
	Type            AuditType
	AuditDate       time.Time
	Observations    string
	Recommendations string
	// Comments is the free-text remark of area-rated audits.
	Comments  string
	Signature string
	CreatedAt time.Time
}

// Submission is a fully validated audit payload. Details holds exactly one
// variant matching Type.
type Submission struct {
	Type            AuditType
	Auditor         Auditor
	LocationName    string
	AuditDate       time.Time
	Observations    string
	Recommendations string
	Signature       string
	Details         Details
}

// Details is the closed set of type-specific payloads:
// *FireDetails, *LadderDetails, *CustodialDetails, *LandscapingDetails.
type Details interface {
	AuditType() AuditType
	details()
}

// MonthYear is a month-granular date as captured on equipment labels.
type MonthYear struct {
	Month int
	Year  int
}

// Time returns the first day of the month in UTC.
func (m MonthYear) Time() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}

// FireDetails is the fire extinguisher inspection payload.
type FireDetails struct {
	ExtinguisherLocation string
	SerialNumber         string
	ManufactureDate      MonthYear
	ExpiryDate           MonthYear
	ExtinguisherType     string
	Size                 string
	Rating               string
	Inspection           map[string]Outcome
	// MaintenanceTagPhoto is an inline data URI, uploaded by the pipeline.
	MaintenanceTagPhoto string
	OverallCondition    *Condition
}

func (*FireDetails) AuditType() AuditType { return AuditTypeFire }
func (*FireDetails) details()             {}

// LadderDetails is the ladder inspection payload.
type LadderDetails struct {
	LadderLocation   string
	ReferenceNumber  string
	LadderType       string
	Length           string
	Construction     string
	Class            string
	Inspection       map[string]Outcome
	OtherDefects     string
	DefectPhoto      string
	OverallCondition *Condition
}

func (*LadderDetails) AuditType() AuditType { return AuditTypeLadder }
func (*LadderDetails) details()             {}

// AreaRating is one rated (or unrated, when Rating is nil) inspection area.
type AreaRating struct {
	AreaName  string
	Rating    *int
	CreatedAt time.Time
}

// CustodialDetails is the custodial area-rating payload.
type CustodialDetails struct {
	Ratings  []AreaRating
	Comments string
}

func (*CustodialDetails) AuditType() AuditType { return AuditTypeCustodial }
func (*CustodialDetails) details()             {}

// LandscapingDetails is the landscaping area-rating payload.
type LandscapingDetails struct {
	Ratings  []AreaRating
	Comments string
}

func (*LandscapingDetails) AuditType() AuditType { return AuditTypeLandscaping }
func (*LandscapingDetails) details()             {}

// FireRecord is the persisted fire_extinguisher_audits row.
type FireRecord struct {
	AuditID                uuid.UUID
	ExtinguisherLocation   string
	SerialNumber           string
	ManufactureDate        time.Time
	ExpiryDate             time.Time
	ExtinguisherType       string
	Size                   string
	Rating                 string
	Inspection             map[string]Outcome
	MaintenanceTagPhotoURL *string
	OverallCondition       *Condition
}

// LadderAnswer is one persisted ladder_answers row.
type LadderAnswer struct {
	QuestionID   string
	QuestionText string
	Outcome      Outcome
}

// LadderRecord is the persisted ladder_details row plus its answers.
type LadderRecord struct {
	AuditID          uuid.UUID
	LadderLocation   string
	ReferenceNumber  string
	LadderType       string
	Length           string
	Construction     string
	Class            string
	OtherDefects     string
	DefectPhotoURL   *string
	OverallCondition *Condition
	Answers          []LadderAnswer
}

// AuditSummary is one row of a search result.
type AuditSummary struct {
	ID           uuid.UUID
	Type         AuditType
	AuditDate    time.Time
	AuditorName  string
	AuditorEmail string
	LocationName string
}

// AuditRecord is a stored audit with its auditor, location and the detail
// matching its type. Exactly one of Fire, Ladder, Ratings is populated.
type AuditRecord struct {
	Audit    Audit
	Auditor  Auditor
	Location Location
	Fire     *FireRecord
	Ladder   *LadderRecord
	Ratings  []AreaRating
}

// Progress reports how much of an audit form has been filled in.
type Progress struct {
	Percent        int
	CurrentSection string
	Complete       bool
}
