// Package detail implements persistence of type-specific audit details:
// fire extinguisher rows, ladder rows with their checklist answers, and
// per-area ratings for custodial and landscaping audits.
package detail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/safety-audits/internal/adapter/postgres"
	"github.com/heartmarshall/safety-audits/internal/domain"
)

// Repo provides detail-row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new detail repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ratingTable maps a rated audit type to its answers table.
func ratingTable(t domain.AuditType) (string, error) {
	switch t {
	case domain.AuditTypeCustodial:
		return "custodial_answers", nil
	case domain.AuditTypeLandscaping:
		return "landscaping_answers", nil
	}
	return "", fmt.Errorf("audit type %q has no area ratings", t)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertFire writes the single fire_extinguisher_audits row for an audit.
func (r *Repo) InsertFire(ctx context.Context, auditID uuid.UUID, d *domain.FireDetails, photoURL *string) error {
	results, err := json.Marshal(inspectionJSON(d.Inspection))
	if err != nil {
		return fmt.Errorf("marshal inspection results: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("fire_extinguisher_audits").
		Columns("audit_id", "extinguisher_location", "serial_number", "manufacture_date", "expiry_date",
			"type", "size", "rating", "inspection_results", "maintenance_tag_photo", "overall_condition").
		Values(auditID, d.ExtinguisherLocation, d.SerialNumber, d.ManufactureDate.Time(), d.ExpiryDate.Time(),
			d.ExtinguisherType, d.Size, d.Rating, results, photoURL, conditionArg(d.OverallCondition)).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "build fire detail insert")
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insert fire detail")
	}
	return nil
}

// InsertLadder writes the ladder_details row and one ladder_answers row per
// checklist item, in checklist order.
func (r *Repo) InsertLadder(ctx context.Context, auditID uuid.UUID, d *domain.LadderDetails, photoURL *string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("ladder_details").
		Columns("audit_id", "ladder_location", "reference_number", "type", "length",
			"construction", "class", "other_defects", "defect_photo", "overall_condition").
		Values(auditID, d.LadderLocation, d.ReferenceNumber, d.LadderType, d.Length,
			d.Construction, d.Class, d.OtherDefects, photoURL, conditionArg(d.OverallCondition)).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "build ladder detail insert")
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insert ladder detail")
	}

	answers := postgres.Builder().
		Insert("ladder_answers").
		Columns("audit_id", "question_id", "question_text", "answer")
	for _, item := range domain.LadderChecklist {
		outcome, ok := d.Inspection[item.ID]
		if !ok {
			outcome = domain.OutcomeNotApplicable
		}
		answers = answers.Values(auditID, item.ID, item.Question, outcome.Bool())
	}

	query, args, err = answers.ToSql()
	if err != nil {
		return postgres.MapError(err, "build ladder answers insert")
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insert ladder answers")
	}
	return nil
}

// InsertRatings writes one row per area into the answers table of typ.
// An empty slice is a no-op.
func (r *Repo) InsertRatings(ctx context.Context, auditID uuid.UUID, typ domain.AuditType, ratings []domain.AreaRating) error {
	table, err := ratingTable(typ)
	if err != nil {
		return err
	}
	if len(ratings) == 0 {
		return nil
	}

	ib := postgres.Builder().
		Insert(table).
		Columns("audit_id", "area_name", "rating", "created_at")
	for _, ar := range ratings {
		createdAt := ar.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		ib = ib.Values(auditID, ar.AreaName, ar.Rating, createdAt)
	}

	query, args, err := ib.ToSql()
	if err != nil {
		return postgres.MapError(err, "build "+table+" insert")
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insert "+table)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetFire returns the fire detail row of an audit.
func (r *Repo) GetFire(ctx context.Context, auditID uuid.UUID) (*domain.FireRecord, error) {
	query, args, err := postgres.Builder().
		Select("audit_id", "extinguisher_location", "serial_number", "manufacture_date", "expiry_date",
			"type", "size", "rating", "inspection_results", "maintenance_tag_photo", "overall_condition").
		From("fire_extinguisher_audits").
		Where(squirrel.Eq{"audit_id": auditID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build fire detail get")
	}

	var (
		rec       domain.FireRecord
		results   []byte
		condition *string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&rec.AuditID, &rec.ExtinguisherLocation, &rec.SerialNumber, &rec.ManufactureDate, &rec.ExpiryDate,
		&rec.ExtinguisherType, &rec.Size, &rec.Rating, &results, &rec.MaintenanceTagPhotoURL, &condition,
	)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("get fire detail %s", auditID))
	}

	var raw map[string]*bool
	if err := json.Unmarshal(results, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal inspection results: %w", err)
	}
	rec.Inspection = make(map[string]domain.Outcome, len(raw))
	for id, v := range raw {
		rec.Inspection[id] = domain.OutcomeFromBool(v)
	}
	rec.OverallCondition = toCondition(condition)

	return &rec, nil
}

// GetLadder returns the ladder detail row of an audit with its answers.
func (r *Repo) GetLadder(ctx context.Context, auditID uuid.UUID) (*domain.LadderRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("audit_id", "ladder_location", "reference_number", "type", "length",
			"construction", "class", "other_defects", "defect_photo", "overall_condition").
		From("ladder_details").
		Where(squirrel.Eq{"audit_id": auditID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build ladder detail get")
	}

	var (
		rec       domain.LadderRecord
		condition *string
	)
	err = q.QueryRow(ctx, query, args...).Scan(
		&rec.AuditID, &rec.LadderLocation, &rec.ReferenceNumber, &rec.LadderType, &rec.Length,
		&rec.Construction, &rec.Class, &rec.OtherDefects, &rec.DefectPhotoURL, &condition,
	)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("get ladder detail %s", auditID))
	}
	rec.OverallCondition = toCondition(condition)

	query, args, err = postgres.Builder().
		Select("question_id", "question_text", "answer").
		From("ladder_answers").
		Where(squirrel.Eq{"audit_id": auditID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build ladder answers get")
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list ladder answers")
	}
	defer rows.Close()

	byID := make(map[string]domain.LadderAnswer)
	for rows.Next() {
		var (
			a      domain.LadderAnswer
			answer *bool
		)
		if err := rows.Scan(&a.QuestionID, &a.QuestionText, &answer); err != nil {
			return nil, postgres.MapError(err, "scan ladder answer")
		}
		a.Outcome = domain.OutcomeFromBool(answer)
		byID[a.QuestionID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list ladder answers")
	}

	// Checklist order; answers for retired questions follow in any order.
	for _, item := range domain.LadderChecklist {
		if a, ok := byID[item.ID]; ok {
			rec.Answers = append(rec.Answers, a)
			delete(byID, item.ID)
		}
	}
	for _, a := range byID {
		rec.Answers = append(rec.Answers, a)
	}

	return &rec, nil
}

// ListRatings returns the area ratings of a custodial or landscaping audit,
// ordered by area name.
func (r *Repo) ListRatings(ctx context.Context, auditID uuid.UUID, typ domain.AuditType) ([]domain.AreaRating, error) {
	table, err := ratingTable(typ)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Select("area_name", "rating", "created_at").
		From(table).
		Where(squirrel.Eq{"audit_id": auditID}).
		OrderBy("area_name").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build "+table+" list")
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list "+table)
	}
	defer rows.Close()

	result := make([]domain.AreaRating, 0)
	for rows.Next() {
		var (
			ar     domain.AreaRating
			rating *int16
		)
		if err := rows.Scan(&ar.AreaName, &rating, &ar.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "scan "+table)
		}
		if rating != nil {
			v := int(*rating)
			ar.Rating = &v
		}
		result = append(result, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list "+table)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// inspectionJSON converts outcomes to the stored true/false/null form.
func inspectionJSON(in map[string]domain.Outcome) map[string]*bool {
	out := make(map[string]*bool, len(in))
	for id, o := range in {
		out[id] = o.Bool()
	}
	return out
}

func conditionArg(c *domain.Condition) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func toCondition(s *string) *domain.Condition {
	if s == nil {
		return nil
	}
	c := domain.Condition(*s)
	return &c
}
