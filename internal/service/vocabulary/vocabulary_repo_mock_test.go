package vocabulary

import (
	"context"
	"sync"

	"github.com/vocadex/vocadex-backend/internal/domain"
)

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	GetByKeysFunc  func(ctx context.Context, langCode string, keys []domain.VocabularyKey) (map[domain.VocabularyKey]domain.Vocabulary, error)
	BulkInsertFunc func(ctx context.Context, items []domain.Vocabulary) (int, error)

	calls struct {
		GetByKeys []struct {
			Ctx      context.Context
			LangCode string
			Keys     []domain.VocabularyKey
		}
		BulkInsert []struct {
			Ctx   context.Context
			Items []domain.Vocabulary
		}
	}
	lockGetByKeys  sync.RWMutex
	lockBulkInsert sync.RWMutex
}

func (mock *vocabularyRepoMock) GetByKeys(ctx context.Context, langCode string, keys []domain.VocabularyKey) (map[domain.VocabularyKey]domain.Vocabulary, error) {
	if mock.GetByKeysFunc == nil {
		panic("vocabularyRepoMock.GetByKeysFunc: method is nil but vocabularyRepo.GetByKeys was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LangCode string
		Keys     []domain.VocabularyKey
	}{Ctx: ctx, LangCode: langCode, Keys: keys}
	mock.lockGetByKeys.Lock()
	mock.calls.GetByKeys = append(mock.calls.GetByKeys, callInfo)
	mock.lockGetByKeys.Unlock()
	return mock.GetByKeysFunc(ctx, langCode, keys)
}

func (mock *vocabularyRepoMock) GetByKeysCalls() []struct {
	Ctx      context.Context
	LangCode string
	Keys     []domain.VocabularyKey
} {
	mock.lockGetByKeys.RLock()
	calls := mock.calls.GetByKeys
	mock.lockGetByKeys.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) BulkInsert(ctx context.Context, items []domain.Vocabulary) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("vocabularyRepoMock.BulkInsertFunc: method is nil but vocabularyRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.Vocabulary
	}{Ctx: ctx, Items: items}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, items)
}

func (mock *vocabularyRepoMock) BulkInsertCalls() []struct {
	Ctx   context.Context
	Items []domain.Vocabulary
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}
