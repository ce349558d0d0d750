package knowledge

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vocadex/vocadex-backend/internal/adapter/postgres/learnervocab"
	"github.com/vocadex/vocadex-backend/internal/domain"
)

var _ learnerVocabRepo = &learnerVocabRepoMock{}

type learnerVocabRepoMock struct {
	GetFunc         func(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID) (domain.LearnerVocabulary, error)
	CreateFunc      func(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error)
	UpdateLevelFunc func(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error)
	UpdateNotesFunc func(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID, notes *string) (domain.LearnerVocabulary, error)
	BulkCreateFunc  func(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID, level domain.KnowledgeLevel) (int, error)
	ListFunc        func(ctx context.Context, learnerID uuid.UUID, filter domain.KnowledgeFilter) ([]learnervocab.ListItem, error)

	calls struct {
		Get []struct {
			Ctx          context.Context
			LearnerID    uuid.UUID
			VocabularyID uuid.UUID
		}
		Create []struct {
			Ctx          context.Context
			LearnerID    uuid.UUID
			VocabularyID uuid.UUID
			Level        domain.KnowledgeLevel
		}
		UpdateLevel []struct {
			Ctx          context.Context
			LearnerID    uuid.UUID
			VocabularyID uuid.UUID
			Level        domain.KnowledgeLevel
		}
		UpdateNotes []struct {
			Ctx          context.Context
			LearnerID    uuid.UUID
			VocabularyID uuid.UUID
			Notes        *string
		}
		BulkCreate []struct {
			Ctx           context.Context
			LearnerID     uuid.UUID
			VocabularyIDs []uuid.UUID
			Level         domain.KnowledgeLevel
		}
		List []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			Filter    domain.KnowledgeFilter
		}
	}
	lockGet         sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdateLevel sync.RWMutex
	lockUpdateNotes sync.RWMutex
	lockBulkCreate  sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *learnerVocabRepoMock) Get(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID) (domain.LearnerVocabulary, error) {
	if mock.GetFunc == nil {
		panic("learnerVocabRepoMock.GetFunc: method is nil but learnerVocabRepo.Get was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LearnerID    uuid.UUID
		VocabularyID uuid.UUID
	}{Ctx: ctx, LearnerID: learnerID, VocabularyID: vocabularyID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, learnerID, vocabularyID)
}

func (mock *learnerVocabRepoMock) GetCalls() []struct {
	Ctx          context.Context
	LearnerID    uuid.UUID
	VocabularyID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *learnerVocabRepoMock) Create(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error) {
	if mock.CreateFunc == nil {
		panic("learnerVocabRepoMock.CreateFunc: method is nil but learnerVocabRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LearnerID    uuid.UUID
		VocabularyID uuid.UUID
		Level        domain.KnowledgeLevel
	}{Ctx: ctx, LearnerID: learnerID, VocabularyID: vocabularyID, Level: level}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, learnerID, vocabularyID, level)
}

func (mock *learnerVocabRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	LearnerID    uuid.UUID
	VocabularyID uuid.UUID
	Level        domain.KnowledgeLevel
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *learnerVocabRepoMock) UpdateLevel(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID, level domain.KnowledgeLevel) (domain.LearnerVocabulary, error) {
	if mock.UpdateLevelFunc == nil {
		panic("learnerVocabRepoMock.UpdateLevelFunc: method is nil but learnerVocabRepo.UpdateLevel was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LearnerID    uuid.UUID
		VocabularyID uuid.UUID
		Level        domain.KnowledgeLevel
	}{Ctx: ctx, LearnerID: learnerID, VocabularyID: vocabularyID, Level: level}
	mock.lockUpdateLevel.Lock()
	mock.calls.UpdateLevel = append(mock.calls.UpdateLevel, callInfo)
	mock.lockUpdateLevel.Unlock()
	return mock.UpdateLevelFunc(ctx, learnerID, vocabularyID, level)
}

func (mock *learnerVocabRepoMock) UpdateLevelCalls() []struct {
	Ctx          context.Context
	LearnerID    uuid.UUID
	VocabularyID uuid.UUID
	Level        domain.KnowledgeLevel
} {
	mock.lockUpdateLevel.RLock()
	calls := mock.calls.UpdateLevel
	mock.lockUpdateLevel.RUnlock()
	return calls
}

func (mock *learnerVocabRepoMock) UpdateNotes(ctx context.Context, learnerID uuid.UUID, vocabularyID uuid.UUID, notes *string) (domain.LearnerVocabulary, error) {
	if mock.UpdateNotesFunc == nil {
		panic("learnerVocabRepoMock.UpdateNotesFunc: method is nil but learnerVocabRepo.UpdateNotes was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		LearnerID    uuid.UUID
		VocabularyID uuid.UUID
		Notes        *string
	}{Ctx: ctx, LearnerID: learnerID, VocabularyID: vocabularyID, Notes: notes}
	mock.lockUpdateNotes.Lock()
	mock.calls.UpdateNotes = append(mock.calls.UpdateNotes, callInfo)
	mock.lockUpdateNotes.Unlock()
	return mock.UpdateNotesFunc(ctx, learnerID, vocabularyID, notes)
}

func (mock *learnerVocabRepoMock) UpdateNotesCalls() []struct {
	Ctx          context.Context
	LearnerID    uuid.UUID
	VocabularyID uuid.UUID
	Notes        *string
} {
	mock.lockUpdateNotes.RLock()
	calls := mock.calls.UpdateNotes
	mock.lockUpdateNotes.RUnlock()
	return calls
}

func (mock *learnerVocabRepoMock) BulkCreate(ctx context.Context, learnerID uuid.UUID, vocabularyIDs []uuid.UUID, level domain.KnowledgeLevel) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("learnerVocabRepoMock.BulkCreateFunc: method is nil but learnerVocabRepo.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		LearnerID     uuid.UUID
		VocabularyIDs []uuid.UUID
		Level         domain.KnowledgeLevel
	}{Ctx: ctx, LearnerID: learnerID, VocabularyIDs: vocabularyIDs, Level: level}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, learnerID, vocabularyIDs, level)
}

func (mock *learnerVocabRepoMock) BulkCreateCalls() []struct {
	Ctx           context.Context
	LearnerID     uuid.UUID
	VocabularyIDs []uuid.UUID
	Level         domain.KnowledgeLevel
} {
	mock.lockBulkCreate.RLock()
	calls := mock.calls.BulkCreate
	mock.lockBulkCreate.RUnlock()
	return calls
}

func (mock *learnerVocabRepoMock) List(ctx context.Context, learnerID uuid.UUID, filter domain.KnowledgeFilter) ([]learnervocab.ListItem, error) {
	if mock.ListFunc == nil {
		panic("learnerVocabRepoMock.ListFunc: method is nil but learnerVocabRepo.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
		Filter    domain.KnowledgeFilter
	}{Ctx: ctx, LearnerID: learnerID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, learnerID, filter)
}

func (mock *learnerVocabRepoMock) ListCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	Filter    domain.KnowledgeFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Vocabulary, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *vocabularyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Vocabulary, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabularyRepoMock.GetByIDFunc: method is nil but vocabularyRepo.GetByID was just called")
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

func (mock *vocabularyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

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

	calls struct {
		GetVocabularyIDs []struct {
			Ctx       context.Context
			ContentID uuid.UUID
		}
	}
	lockGetVocabularyIDs sync.RWMutex
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

var _ learnerRepo = &learnerRepoMock{}

type learnerRepoMock struct {
	IsLearningLanguageFunc func(ctx context.Context, learnerID uuid.UUID, langCode string) (bool, error)

	calls struct {
		IsLearningLanguage []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			LangCode  string
		}
	}
	lockIsLearningLanguage sync.RWMutex
}

func (mock *learnerRepoMock) IsLearningLanguage(ctx context.Context, learnerID uuid.UUID, langCode string) (bool, error) {
	if mock.IsLearningLanguageFunc == nil {
		panic("learnerRepoMock.IsLearningLanguageFunc: method is nil but learnerRepo.IsLearningLanguage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
		LangCode  string
	}{Ctx: ctx, LearnerID: learnerID, LangCode: langCode}
	mock.lockIsLearningLanguage.Lock()
	mock.calls.IsLearningLanguage = append(mock.calls.IsLearningLanguage, callInfo)
	mock.lockIsLearningLanguage.Unlock()
	return mock.IsLearningLanguageFunc(ctx, learnerID, langCode)
}

func (mock *learnerRepoMock) IsLearningLanguageCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	LangCode  string
} {
	mock.lockIsLearningLanguage.RLock()
	calls := mock.calls.IsLearningLanguage
	mock.lockIsLearningLanguage.RUnlock()
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
