package audit

import (
	"math"
	"strings"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

const progressComplete = "Complete!"

// section is one titled step of an audit form; each flag tells whether a
// field of that step has been filled in.
type section struct {
	title  string
	filled []bool
}

func auditorSection(c *Common) section {
	return section{"Auditor Details", []bool{filled(c.Name), filled(c.Email), filled(c.Location)}}
}

func (in *FireInput) sections() []section {
	return []section{
		auditorSection(&in.Common),
		{"Fire Extinguisher Information", []bool{
			filled(in.ExtinguisherLocation),
			filled(in.SerialNumber),
			in.ManufactureDate.filled(),
			in.ExpiryDate.filled(),
			filledPtr(in.Type),
			filled(in.Size),
			filledPtr(in.Rating),
		}},
		{"Fire Extinguisher Inspection", []bool{
			anyAnswered(in.InspectionResults),
			filled(in.MaintenanceTagPhoto),
			filledPtr(in.OverallCondition),
		}},
		{"Complete Audit", []bool{filled(in.Recommendations), filled(in.Signature)}},
	}
}

func (in *LadderInput) sections() []section {
	return []section{
		auditorSection(&in.Common),
		{"Ladder Information", []bool{
			filled(in.LadderLocation),
			filled(in.ReferenceNumber),
			filled(in.Type),
			filled(in.Length),
			filled(in.Construction),
			filled(in.Class),
		}},
		{"Ladder Inspection", []bool{
			anyAnswered(in.InspectionResults),
			filled(in.OtherDefects),
			filled(in.DefectPhoto),
			filledPtr(in.OverallCondition),
		}},
		{"Complete Audit", []bool{filled(in.Recommendations), filled(in.Signature)}},
	}
}

func (in *AreaInput) sections() []section {
	return []section{
		auditorSection(&in.Common),
		{"Areas of Inspection", []bool{anyAnswered(in.InspectionResults), filled(in.Comments)}},
		{"Complete Audit", []bool{filled(in.Observations), filled(in.Recommendations), filled(in.Signature)}},
	}
}

// Progress reports how far a partially filled form has come. It never fails:
// incomplete input is exactly what it measures.
func (s *Service) Progress(in Input) domain.Progress {
	return computeProgress(in.sections())
}

func computeProgress(sections []section) domain.Progress {
	total, done := 0, 0
	current := ""
	for _, sec := range sections {
		for _, ok := range sec.filled {
			total++
			if ok {
				done++
			} else if current == "" {
				current = sec.title
			}
		}
	}

	if current == "" {
		return domain.Progress{Percent: 100, CurrentSection: progressComplete, Complete: true}
	}

	return domain.Progress{
		Percent:        int(math.Round(float64(done) / float64(total) * 100)),
		CurrentSection: current,
	}
}

func filled(s string) bool { return strings.TrimSpace(s) != "" }

func filledPtr(s *string) bool { return s != nil && filled(*s) }

func (m MonthYear) filled() bool { return filled(m.Month) || filled(m.Year) }

// anyAnswered is true once at least one entry carries a non-null answer.
func anyAnswered[V any](m map[string]*V) bool {
	for _, v := range m {
		if v != nil {
			return true
		}
	}
	return false
}
