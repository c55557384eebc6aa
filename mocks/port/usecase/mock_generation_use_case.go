package usecase

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockGenerationUseCase is a mock type for the GenerationUseCase type
type MockGenerationUseCase struct {
	mock.Mock
}

type MockGenerationUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGenerationUseCase) EXPECT() *MockGenerationUseCase_Expecter {
	return &MockGenerationUseCase_Expecter{mock: &_m.Mock}
}

// Generate provides a mock function with given fields: ctx, req
func (_m *MockGenerationUseCase) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Generate")
	}

	var r0 *entity.GenerationResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.GenerationRequest) (*entity.GenerationResult, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.GenerationRequest) *entity.GenerationResult); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.GenerationResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *entity.GenerationRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockGenerationUseCase_Generate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Generate'
type MockGenerationUseCase_Generate_Call struct {
	*mock.Call
}

// Generate is a helper method to define mock.On call
func (_e *MockGenerationUseCase_Expecter) Generate(ctx interface{}, req interface{}) *MockGenerationUseCase_Generate_Call {
	return &MockGenerationUseCase_Generate_Call{Call: _e.mock.On("Generate", ctx, req)}
}

func (_c *MockGenerationUseCase_Generate_Call) Run(run func(ctx context.Context, req *entity.GenerationRequest)) *MockGenerationUseCase_Generate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.GenerationRequest))
	})
	return _c
}

func (_c *MockGenerationUseCase_Generate_Call) Return(_a0 *entity.GenerationResult, _a1 error) *MockGenerationUseCase_Generate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockGenerationUseCase_Generate_Call) RunAndReturn(run func(context.Context, *entity.GenerationRequest) (*entity.GenerationResult, error)) *MockGenerationUseCase_Generate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGenerationUseCase creates a new instance of MockGenerationUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGenerationUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerationUseCase {
	m := &MockGenerationUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
