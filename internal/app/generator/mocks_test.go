package generator

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

var (
	_ Generator           = &generatorMock{}
	_ batchStore          = &batchStoreMock{}
	_ txManager           = &txManagerMock{}
	_ exampleStore        = &exampleStoreMock{}
	_ transformationStore = &transformationStoreMock{}
)

type generatorMock struct {
	GenerateFunc func(ctx context.Context, system, prompt string) (json.RawMessage, error)

	calls struct {
		Generate []struct {
			System string
			Prompt string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, system, prompt string) (json.RawMessage, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but Generator.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct {
		System string
		Prompt string
	}{System: system, Prompt: prompt})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, system, prompt)
}

func (mock *generatorMock) GenerateCalls() []struct {
	System string
	Prompt string
} {
	mock.lockGenerate.RLock()
	defer mock.lockGenerate.RUnlock()
	return mock.calls.Generate
}

type batchStoreMock struct {
	PersistFunc func(ctx context.Context, cat catalog.Category, rows Rows) (int, []RowError, error)

	calls struct {
		Persist []struct {
			Cat  catalog.Category
			Rows Rows
		}
	}
	lockPersist sync.RWMutex
}

func (mock *batchStoreMock) Persist(ctx context.Context, cat catalog.Category, rows Rows) (int, []RowError, error) {
	if mock.PersistFunc == nil {
		panic("batchStoreMock.PersistFunc: method is nil but batchStore.Persist was just called")
	}
	mock.lockPersist.Lock()
	mock.calls.Persist = append(mock.calls.Persist, struct {
		Cat  catalog.Category
		Rows Rows
	}{Cat: cat, Rows: rows})
	mock.lockPersist.Unlock()
	return mock.PersistFunc(ctx, cat, rows)
}

func (mock *batchStoreMock) PersistCalls() []struct {
	Cat  catalog.Category
	Rows Rows
} {
	mock.lockPersist.RLock()
	defer mock.lockPersist.RUnlock()
	return mock.calls.Persist
}

type txManagerMock struct {
	RunInTxFunc        func(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepointFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx        int
		RunInSavepoint int
	}
	lock sync.Mutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx++
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInSavepointFunc == nil {
		panic("txManagerMock.RunInSavepointFunc: method is nil but txManager.RunInSavepoint was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInSavepoint++
	mock.lock.Unlock()
	return mock.RunInSavepointFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lock.Lock()
	defer mock.lock.Unlock()
	return mock.calls.RunInTx
}

type exampleStoreMock struct {
	InsertFunc func(ctx context.Context, ex domain.NewExample) (int64, error)

	calls struct {
		Insert []domain.NewExample
	}
	lockInsert sync.RWMutex
}

func (mock *exampleStoreMock) Insert(ctx context.Context, ex domain.NewExample) (int64, error) {
	if mock.InsertFunc == nil {
		panic("exampleStoreMock.InsertFunc: method is nil but exampleStore.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, ex)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, ex)
}

func (mock *exampleStoreMock) InsertCalls() []domain.NewExample {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}

type transformationStoreMock struct {
	InsertFunc func(ctx context.Context, t domain.NewTransformation) (int64, error)

	calls struct {
		Insert []domain.NewTransformation
	}
	lockInsert sync.RWMutex
}

func (mock *transformationStoreMock) Insert(ctx context.Context, t domain.NewTransformation) (int64, error) {
	if mock.InsertFunc == nil {
		panic("transformationStoreMock.InsertFunc: method is nil but transformationStore.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, t)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, t)
}

func (mock *transformationStoreMock) InsertCalls() []domain.NewTransformation {
	mock.lockInsert.RLock()
	defer mock.lockInsert.RUnlock()
	return mock.calls.Insert
}
