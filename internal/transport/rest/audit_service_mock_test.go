package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/safety-audits/internal/domain"
	"github.com/heartmarshall/safety-audits/internal/service/audit"
)

var _ auditService = &auditServiceMock{}

type auditServiceMock struct {
	SubmitFunc       func(ctx context.Context, in audit.Input) (uuid.UUID, error)
	ProgressFunc     func(in audit.Input) domain.Progress
	SearchAuditsFunc func(ctx context.Context, term string) ([]domain.AuditSummary, error)
	GetAuditFunc     func(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)

	calls struct {
		Submit []struct {
			Ctx context.Context
			In  audit.Input
		}
		Progress []struct {
			In audit.Input
		}
		SearchAudits []struct {
			Ctx  context.Context
			Term string
		}
		GetAudit []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockSubmit       sync.RWMutex
	lockProgress     sync.RWMutex
	lockSearchAudits sync.RWMutex
	lockGetAudit     sync.RWMutex
}

func (mock *auditServiceMock) Submit(ctx context.Context, in audit.Input) (uuid.UUID, error) {
	if mock.SubmitFunc == nil {
		panic("auditServiceMock.SubmitFunc: method is nil but auditService.Submit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  audit.Input
	}{Ctx: ctx, In: in}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, in)
}

func (mock *auditServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	In  audit.Input
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *auditServiceMock) Progress(in audit.Input) domain.Progress {
	if mock.ProgressFunc == nil {
		panic("auditServiceMock.ProgressFunc: method is nil but auditService.Progress was just called")
	}
	callInfo := struct {
		In audit.Input
	}{In: in}
	mock.lockProgress.Lock()
	mock.calls.Progress = append(mock.calls.Progress, callInfo)
	mock.lockProgress.Unlock()
	return mock.ProgressFunc(in)
}

func (mock *auditServiceMock) ProgressCalls() []struct {
	In audit.Input
} {
	mock.lockProgress.RLock()
	calls := mock.calls.Progress
	mock.lockProgress.RUnlock()
	return calls
}

func (mock *auditServiceMock) SearchAudits(ctx context.Context, term string) ([]domain.AuditSummary, error) {
	if mock.SearchAuditsFunc == nil {
		panic("auditServiceMock.SearchAuditsFunc: method is nil but auditService.SearchAudits was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Term string
	}{Ctx: ctx, Term: term}
	mock.lockSearchAudits.Lock()
	mock.calls.SearchAudits = append(mock.calls.SearchAudits, callInfo)
	mock.lockSearchAudits.Unlock()
	return mock.SearchAuditsFunc(ctx, term)
}

func (mock *auditServiceMock) SearchAuditsCalls() []struct {
	Ctx  context.Context
	Term string
} {
	mock.lockSearchAudits.RLock()
	calls := mock.calls.SearchAudits
	mock.lockSearchAudits.RUnlock()
	return calls
}

func (mock *auditServiceMock) GetAudit(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	if mock.GetAuditFunc == nil {
		panic("auditServiceMock.GetAuditFunc: method is nil but auditService.GetAudit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetAudit.Lock()
	mock.calls.GetAudit = append(mock.calls.GetAudit, callInfo)
	mock.lockGetAudit.Unlock()
	return mock.GetAuditFunc(ctx, id)
}

func (mock *auditServiceMock) GetAuditCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetAudit.RLock()
	calls := mock.calls.GetAudit
	mock.lockGetAudit.RUnlock()
	return calls
}
