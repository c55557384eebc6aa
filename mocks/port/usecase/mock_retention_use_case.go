package usecase

import (
	"context"

	usecase "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockRetentionUseCase is a mock type for the RetentionUseCase type
type MockRetentionUseCase struct {
	mock.Mock
}

type MockRetentionUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRetentionUseCase) EXPECT() *MockRetentionUseCase_Expecter {
	return &MockRetentionUseCase_Expecter{mock: &_m.Mock}
}

// SweepAnonymousAccounts provides a mock function with given fields: ctx
func (_m *MockRetentionUseCase) SweepAnonymousAccounts(ctx context.Context) (*usecase.SweepResult, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for SweepAnonymousAccounts")
	}

	var r0 *usecase.SweepResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*usecase.SweepResult, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *usecase.SweepResult); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.SweepResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRetentionUseCase_SweepAnonymousAccounts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SweepAnonymousAccounts'
type MockRetentionUseCase_SweepAnonymousAccounts_Call struct {
	*mock.Call
}

// SweepAnonymousAccounts is a helper method to define mock.On call
func (_e *MockRetentionUseCase_Expecter) SweepAnonymousAccounts(ctx interface{}) *MockRetentionUseCase_SweepAnonymousAccounts_Call {
	return &MockRetentionUseCase_SweepAnonymousAccounts_Call{Call: _e.mock.On("SweepAnonymousAccounts", ctx)}
}

func (_c *MockRetentionUseCase_SweepAnonymousAccounts_Call) Run(run func(ctx context.Context)) *MockRetentionUseCase_SweepAnonymousAccounts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockRetentionUseCase_SweepAnonymousAccounts_Call) Return(_a0 *usecase.SweepResult, _a1 error) *MockRetentionUseCase_SweepAnonymousAccounts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRetentionUseCase_SweepAnonymousAccounts_Call) RunAndReturn(run func(context.Context) (*usecase.SweepResult, error)) *MockRetentionUseCase_SweepAnonymousAccounts_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRetentionUseCase creates a new instance of MockRetentionUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRetentionUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRetentionUseCase {
	m := &MockRetentionUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
