package linker

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/domain"
	"github.com/vocadex/vocadex-backend/internal/tokenizer"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.ContentItem, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *contentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.ContentItem, error) {
	if mock.GetByIDFunc == nil {
		panic("contentRepoMock.GetByIDFunc: method is nil but contentRepo.GetByID was just called")
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

func (mock *contentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	GetVocabularyIDsFunc func(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error)
	BatchInsertFunc      func(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error)
	BatchDeleteFunc      func(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error)

	calls struct {
		GetVocabularyIDs []struct {
			Ctx       context.Context
			ContentID uuid.UUID
		}
		BatchInsert []struct {
			Ctx           context.Context
			ContentID     uuid.UUID
			VocabularyIDs []uuid.UUID
		}
		BatchDelete []struct {
			Ctx           context.Context
			ContentID     uuid.UUID
			VocabularyIDs []uuid.UUID
		}
	}
	lockGetVocabularyIDs sync.RWMutex
	lockBatchInsert      sync.RWMutex
	lockBatchDelete      sync.RWMutex
}

func (mock *linkRepoMock) GetVocabularyIDs(ctx context.Context, contentID uuid.UUID) ([]uuid.UUID, error) {
	if mock.GetVocabularyIDsFunc == nil {
		panic("linkRepoMock.GetVocabularyIDsFunc: method is nil but linkRepo.GetVocabularyIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID uuid.UUID
	}{Ctx: ctx, ContentID: contentID}
	mock.lockGetVocabularyIDs.Lock()
	mock.calls.GetVocabularyIDs = append(mock.calls.GetVocabularyIDs, callInfo)
	mock.lockGetVocabularyIDs.Unlock()
	return mock.GetVocabularyIDsFunc(ctx, contentID)
}

func (mock *linkRepoMock) GetVocabularyIDsCalls() []struct {
	Ctx       context.Context
	ContentID uuid.UUID
} {
	mock.lockGetVocabularyIDs.RLock()
	calls := mock.calls.GetVocabularyIDs
	mock.lockGetVocabularyIDs.RUnlock()
	return calls
}

func (mock *linkRepoMock) BatchInsert(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error) {
	if mock.BatchInsertFunc == nil {
		panic("linkRepoMock.BatchInsertFunc: method is nil but linkRepo.BatchInsert was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContentID     uuid.UUID
		VocabularyIDs []uuid.UUID
	}{Ctx: ctx, ContentID: contentID, VocabularyIDs: vocabularyIDs}
	mock.lockBatchInsert.Lock()
	mock.calls.BatchInsert = append(mock.calls.BatchInsert, callInfo)
	mock.lockBatchInsert.Unlock()
	return mock.BatchInsertFunc(ctx, contentID, vocabularyIDs)
}

func (mock *linkRepoMock) BatchInsertCalls() []struct {
	Ctx           context.Context
	ContentID     uuid.UUID
	VocabularyIDs []uuid.UUID
} {
	mock.lockBatchInsert.RLock()
	calls := mock.calls.BatchInsert
	mock.lockBatchInsert.RUnlock()
	return calls
}

func (mock *linkRepoMock) BatchDelete(ctx context.Context, contentID uuid.UUID, vocabularyIDs []uuid.UUID) (int, error) {
	if mock.BatchDeleteFunc == nil {
		panic("linkRepoMock.BatchDeleteFunc: method is nil but linkRepo.BatchDelete was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ContentID     uuid.UUID
		VocabularyIDs []uuid.UUID
	}{Ctx: ctx, ContentID: contentID, VocabularyIDs: vocabularyIDs}
	mock.lockBatchDelete.Lock()
	mock.calls.BatchDelete = append(mock.calls.BatchDelete, callInfo)
	mock.lockBatchDelete.Unlock()
	return mock.BatchDeleteFunc(ctx, contentID, vocabularyIDs)
}

func (mock *linkRepoMock) BatchDeleteCalls() []struct {
	Ctx           context.Context
	ContentID     uuid.UUID
	VocabularyIDs []uuid.UUID
} {
	mock.lockBatchDelete.RLock()
	calls := mock.calls.BatchDelete
	mock.lockBatchDelete.RUnlock()
	return calls
}

var _ vocabularyEnsurer = &vocabularyEnsurerMock{}

type vocabularyEnsurerMock struct {
	EnsureBatchFunc func(ctx context.Context, langCode string, tokens []tokenizer.Token) (map[domain.VocabularyKey]domain.Vocabulary, error)

	calls struct {
		EnsureBatch []struct {
			Ctx      context.Context
			LangCode string
			Tokens   []tokenizer.Token
		}
	}
	lockEnsureBatch sync.RWMutex
}

func (mock *vocabularyEnsurerMock) EnsureBatch(ctx context.Context, langCode string, tokens []tokenizer.Token) (map[domain.VocabularyKey]domain.Vocabulary, error) {
	if mock.EnsureBatchFunc == nil {
		panic("vocabularyEnsurerMock.EnsureBatchFunc: method is nil but vocabularyEnsurer.EnsureBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LangCode string
		Tokens   []tokenizer.Token
	}{Ctx: ctx, LangCode: langCode, Tokens: tokens}
	mock.lockEnsureBatch.Lock()
	mock.calls.EnsureBatch = append(mock.calls.EnsureBatch, callInfo)
	mock.lockEnsureBatch.Unlock()
	return mock.EnsureBatchFunc(ctx, langCode, tokens)
}

func (mock *vocabularyEnsurerMock) EnsureBatchCalls() []struct {
	Ctx      context.Context
	LangCode string
	Tokens   []tokenizer.Token
} {
	mock.lockEnsureBatch.RLock()
	calls := mock.calls.EnsureBatch
	mock.lockEnsureBatch.RUnlock()
	return calls
}

var _ tokenizerResolver = &tokenizerResolverMock{}

type tokenizerResolverMock struct {
	ResolveFunc func(langCode string) (tokenizer.Tokenizer, error)

	calls struct {
		Resolve []struct {
			LangCode string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *tokenizerResolverMock) Resolve(langCode string) (tokenizer.Tokenizer, error) {
	if mock.ResolveFunc == nil {
		panic("tokenizerResolverMock.ResolveFunc: method is nil but tokenizerResolver.Resolve was just called")
	}
	callInfo := struct {
		LangCode string
	}{LangCode: langCode}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(langCode)
}

func (mock *tokenizerResolverMock) ResolveCalls() []struct {
	LangCode string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
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
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
