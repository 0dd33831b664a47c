package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

var _ auditorRepo = &auditorRepoMock{}

type auditorRepoMock struct {
	UpsertFunc func(ctx context.Context, email string, name string) (uuid.UUID, error)

	calls struct {
		Upsert []struct {
			Ctx   context.Context
			Email string
			Name  string
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *auditorRepoMock) Upsert(ctx context.Context, email string, name string) (uuid.UUID, error) {
	if mock.UpsertFunc == nil {
		panic("auditorRepoMock.UpsertFunc: method is nil but auditorRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Name  string
	}{Ctx: ctx, Email: email, Name: name}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, email, name)
}

func (mock *auditorRepoMock) UpsertCalls() []struct {
	Ctx   context.Context
	Email string
	Name  string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ locationRepo = &locationRepoMock{}

type locationRepoMock struct {
	UpsertFunc func(ctx context.Context, name string) (uuid.UUID, error)

	calls struct {
		Upsert []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *locationRepoMock) Upsert(ctx context.Context, name string) (uuid.UUID, error) {
	if mock.UpsertFunc == nil {
		panic("locationRepoMock.UpsertFunc: method is nil but locationRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, name)
}

func (mock *locationRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc  func(ctx context.Context, a domain.Audit) (domain.Audit, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	SearchFunc  func(ctx context.Context, term string, limit int) ([]domain.AuditSummary, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.Audit
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Search []struct {
			Ctx   context.Context
			Term  string
			Limit int
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockSearch  sync.RWMutex
	lockGetByID sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, a domain.Audit) (domain.Audit, error) {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Audit
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Audit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *auditRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("auditRepoMock.DeleteFunc: method is nil but auditRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *auditRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *auditRepoMock) Search(ctx context.Context, term string, limit int) ([]domain.AuditSummary, error) {
	if mock.SearchFunc == nil {
		panic("auditRepoMock.SearchFunc: method is nil but auditRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Term  string
		Limit int
	}{Ctx: ctx, Term: term, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, term, limit)
}

func (mock *auditRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Term  string
	Limit int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *auditRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("auditRepoMock.GetByIDFunc: method is nil but auditRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *auditRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ detailRepo = &detailRepoMock{}

type detailRepoMock struct {
	InsertFireFunc    func(ctx context.Context, auditID uuid.UUID, d *domain.FireDetails, photoURL *string) error
	InsertLadderFunc  func(ctx context.Context, auditID uuid.UUID, d *domain.LadderDetails, photoURL *string) error
	InsertRatingsFunc func(ctx context.Context, auditID uuid.UUID, typ domain.AuditType, ratings []domain.AreaRating) error
	GetFireFunc       func(ctx context.Context, auditID uuid.UUID) (*domain.FireRecord, error)
	GetLadderFunc     func(ctx context.Context, auditID uuid.UUID) (*domain.LadderRecord, error)
	ListRatingsFunc   func(ctx context.Context, auditID uuid.UUID, typ domain.AuditType) ([]domain.AreaRating, error)

	calls struct {
		InsertFire []struct {
			Ctx      context.Context
			AuditID  uuid.UUID
			D        *domain.FireDetails
			PhotoURL *string
		}
		InsertLadder []struct {
			Ctx      context.Context
			AuditID  uuid.UUID
			D        *domain.LadderDetails
			PhotoURL *string
		}
		InsertRatings []struct {
			Ctx     context.Context
			AuditID uuid.UUID
			Typ     domain.AuditType
			Ratings []domain.AreaRating
		}
		GetFire []struct {
			Ctx     context.Context
			AuditID uuid.UUID
		}
		GetLadder []struct {
			Ctx     context.Context
			AuditID uuid.UUID
		}
		ListRatings []struct {
			Ctx     context.Context
			AuditID uuid.UUID
			Typ     domain.AuditType
		}
	}
	lockInsertFire    sync.RWMutex
	lockInsertLadder  sync.RWMutex
	lockInsertRatings sync.RWMutex
	lockGetFire       sync.RWMutex
	lockGetLadder     sync.RWMutex
	lockListRatings   sync.RWMutex
}

func (mock *detailRepoMock) InsertFire(ctx context.Context, auditID uuid.UUID, d *domain.FireDetails, photoURL *string) error {
	if mock.InsertFireFunc == nil {
		panic("detailRepoMock.InsertFireFunc: method is nil but detailRepo.InsertFire was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuditID  uuid.UUID
		D        *domain.FireDetails
		PhotoURL *string
	}{Ctx: ctx, AuditID: auditID, D: d, PhotoURL: photoURL}
	mock.lockInsertFire.Lock()
	mock.calls.InsertFire = append(mock.calls.InsertFire, callInfo)
	mock.lockInsertFire.Unlock()
	return mock.InsertFireFunc(ctx, auditID, d, photoURL)
}

func (mock *detailRepoMock) InsertFireCalls() []struct {
	Ctx      context.Context
	AuditID  uuid.UUID
	D        *domain.FireDetails
	PhotoURL *string
} {
	mock.lockInsertFire.RLock()
	calls := mock.calls.InsertFire
	mock.lockInsertFire.RUnlock()
	return calls
}

func (mock *detailRepoMock) InsertLadder(ctx context.Context, auditID uuid.UUID, d *domain.LadderDetails, photoURL *string) error {
	if mock.InsertLadderFunc == nil {
		panic("detailRepoMock.InsertLadderFunc: method is nil but detailRepo.InsertLadder was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuditID  uuid.UUID
		D        *domain.LadderDetails
		PhotoURL *string
	}{Ctx: ctx, AuditID: auditID, D: d, PhotoURL: photoURL}
	mock.lockInsertLadder.Lock()
	mock.calls.InsertLadder = append(mock.calls.InsertLadder, callInfo)
	mock.lockInsertLadder.Unlock()
	return mock.InsertLadderFunc(ctx, auditID, d, photoURL)
}

func (mock *detailRepoMock) InsertLadderCalls() []struct {
	Ctx      context.Context
	AuditID  uuid.UUID
	D        *domain.LadderDetails
	PhotoURL *string
} {
	mock.lockInsertLadder.RLock()
	calls := mock.calls.InsertLadder
	mock.lockInsertLadder.RUnlock()
	return calls
}

func (mock *detailRepoMock) InsertRatings(ctx context.Context, auditID uuid.UUID, typ domain.AuditType, ratings []domain.AreaRating) error {
	if mock.InsertRatingsFunc == nil {
		panic("detailRepoMock.InsertRatingsFunc: method is nil but detailRepo.InsertRatings was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AuditID uuid.UUID
		Typ     domain.AuditType
		Ratings []domain.AreaRating
	}{Ctx: ctx, AuditID: auditID, Typ: typ, Ratings: ratings}
	mock.lockInsertRatings.Lock()
	mock.calls.InsertRatings = append(mock.calls.InsertRatings, callInfo)
	mock.lockInsertRatings.Unlock()
	return mock.InsertRatingsFunc(ctx, auditID, typ, ratings)
}

func (mock *detailRepoMock) InsertRatingsCalls() []struct {
	Ctx     context.Context
	AuditID uuid.UUID
	Typ     domain.AuditType
	Ratings []domain.AreaRating
} {
	mock.lockInsertRatings.RLock()
	calls := mock.calls.InsertRatings
	mock.lockInsertRatings.RUnlock()
	return calls
}

func (mock *detailRepoMock) GetFire(ctx context.Context, auditID uuid.UUID) (*domain.FireRecord, error) {
	if mock.GetFireFunc == nil {
		panic("detailRepoMock.GetFireFunc: method is nil but detailRepo.GetFire was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AuditID uuid.UUID
	}{Ctx: ctx, AuditID: auditID}
	mock.lockGetFire.Lock()
	mock.calls.GetFire = append(mock.calls.GetFire, callInfo)
	mock.lockGetFire.Unlock()
	return mock.GetFireFunc(ctx, auditID)
}

func (mock *detailRepoMock) GetFireCalls() []struct {
	Ctx     context.Context
	AuditID uuid.UUID
} {
	mock.lockGetFire.RLock()
	calls := mock.calls.GetFire
	mock.lockGetFire.RUnlock()
	return calls
}

func (mock *detailRepoMock) GetLadder(ctx context.Context, auditID uuid.UUID) (*domain.LadderRecord, error) {
	if mock.GetLadderFunc == nil {
		panic("detailRepoMock.GetLadderFunc: method is nil but detailRepo.GetLadder was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AuditID uuid.UUID
	}{Ctx: ctx, AuditID: auditID}
	mock.lockGetLadder.Lock()
	mock.calls.GetLadder = append(mock.calls.GetLadder, callInfo)
	mock.lockGetLadder.Unlock()
	return mock.GetLadderFunc(ctx, auditID)
}

func (mock *detailRepoMock) GetLadderCalls() []struct {
	Ctx     context.Context
	AuditID uuid.UUID
} {
	mock.lockGetLadder.RLock()
	calls := mock.calls.GetLadder
	mock.lockGetLadder.RUnlock()
	return calls
}

func (mock *detailRepoMock) ListRatings(ctx context.Context, auditID uuid.UUID, typ domain.AuditType) ([]domain.AreaRating, error) {
	if mock.ListRatingsFunc == nil {
		panic("detailRepoMock.ListRatingsFunc: method is nil but detailRepo.ListRatings was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AuditID uuid.UUID
		Typ     domain.AuditType
	}{Ctx: ctx, AuditID: auditID, Typ: typ}
	mock.lockListRatings.Lock()
	mock.calls.ListRatings = append(mock.calls.ListRatings, callInfo)
	mock.lockListRatings.Unlock()
	return mock.ListRatingsFunc(ctx, auditID, typ)
}

func (mock *detailRepoMock) ListRatingsCalls() []struct {
	Ctx     context.Context
	AuditID uuid.UUID
	Typ     domain.AuditType
} {
	mock.lockListRatings.RLock()
	calls := mock.calls.ListRatings
	mock.lockListRatings.RUnlock()
	return calls
}

var _ imageUploader = &imageUploaderMock{}

type imageUploaderMock struct {
	UploadFunc func(ctx context.Context, dataURI string, folder string, baseName string) (string, error)
	DeleteFunc func(ctx context.Context, publicURL string) error

	calls struct {
		Upload []struct {
			Ctx      context.Context
			DataURI  string
			Folder   string
			BaseName string
		}
		Delete []struct {
			Ctx       context.Context
			PublicURL string
		}
	}
	lockUpload sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *imageUploaderMock) Upload(ctx context.Context, dataURI string, folder string, baseName string) (string, error) {
	if mock.UploadFunc == nil {
		panic("imageUploaderMock.UploadFunc: method is nil but imageUploader.Upload was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DataURI  string
		Folder   string
		BaseName string
	}{Ctx: ctx, DataURI: dataURI, Folder: folder, BaseName: baseName}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, dataURI, folder, baseName)
}

func (mock *imageUploaderMock) UploadCalls() []struct {
	Ctx      context.Context
	DataURI  string
	Folder   string
	BaseName string
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *imageUploaderMock) Delete(ctx context.Context, publicURL string) error {
	if mock.DeleteFunc == nil {
		panic("imageUploaderMock.DeleteFunc: method is nil but imageUploader.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		PublicURL string
	}{Ctx: ctx, PublicURL: publicURL}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, publicURL)
}

func (mock *imageUploaderMock) DeleteCalls() []struct {
	Ctx       context.Context
	PublicURL string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
