package usecase

import (
	"context"

	usecase "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockCreditUseCase is a mock type for the CreditUseCase type
type MockCreditUseCase struct {
	mock.Mock
}

type MockCreditUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCreditUseCase) EXPECT() *MockCreditUseCase_Expecter {
	return &MockCreditUseCase_Expecter{mock: &_m.Mock}
}

// GetBalance provides a mock function with given fields: ctx, userID
func (_m *MockCreditUseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetBalance")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCreditUseCase_GetBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBalance'
type MockCreditUseCase_GetBalance_Call struct {
	*mock.Call
}

// GetBalance is a helper method to define mock.On call
func (_e *MockCreditUseCase_Expecter) GetBalance(ctx interface{}, userID interface{}) *MockCreditUseCase_GetBalance_Call {
	return &MockCreditUseCase_GetBalance_Call{Call: _e.mock.On("GetBalance", ctx, userID)}
}

func (_c *MockCreditUseCase_GetBalance_Call) Run(run func(ctx context.Context, userID string)) *MockCreditUseCase_GetBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCreditUseCase_GetBalance_Call) Return(_a0 int64, _a1 error) *MockCreditUseCase_GetBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCreditUseCase_GetBalance_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockCreditUseCase_GetBalance_Call {
	_c.Call.Return(run)
	return _c
}

// Grant provides a mock function with given fields: ctx, userID, amount
func (_m *MockCreditUseCase) Grant(ctx context.Context, userID string, amount int64) (int64, error) {
	ret := _m.Called(ctx, userID, amount)

	if len(ret) == 0 {
		panic("no return value specified for Grant")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) (int64, error)); ok {
		return rf(ctx, userID, amount)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) int64); ok {
		r0 = rf(ctx, userID, amount)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, userID, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCreditUseCase_Grant_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Grant'
type MockCreditUseCase_Grant_Call struct {
	*mock.Call
}

// Grant is a helper method to define mock.On call
func (_e *MockCreditUseCase_Expecter) Grant(ctx interface{}, userID interface{}, amount interface{}) *MockCreditUseCase_Grant_Call {
	return &MockCreditUseCase_Grant_Call{Call: _e.mock.On("Grant", ctx, userID, amount)}
}

func (_c *MockCreditUseCase_Grant_Call) Run(run func(ctx context.Context, userID string, amount int64)) *MockCreditUseCase_Grant_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})
	return _c
}

func (_c *MockCreditUseCase_Grant_Call) Return(_a0 int64, _a1 error) *MockCreditUseCase_Grant_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCreditUseCase_Grant_Call) RunAndReturn(run func(context.Context, string, int64) (int64, error)) *MockCreditUseCase_Grant_Call {
	_c.Call.Return(run)
	return _c
}

// Decrement provides a mock function with given fields: ctx, userID
func (_m *MockCreditUseCase) Decrement(ctx context.Context, userID string) (int64, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Decrement")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCreditUseCase_Decrement_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Decrement'
type MockCreditUseCase_Decrement_Call struct {
	*mock.Call
}

// Decrement is a helper method to define mock.On call
func (_e *MockCreditUseCase_Expecter) Decrement(ctx interface{}, userID interface{}) *MockCreditUseCase_Decrement_Call {
	return &MockCreditUseCase_Decrement_Call{Call: _e.mock.On("Decrement", ctx, userID)}
}

func (_c *MockCreditUseCase_Decrement_Call) Run(run func(ctx context.Context, userID string)) *MockCreditUseCase_Decrement_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCreditUseCase_Decrement_Call) Return(_a0 int64, _a1 error) *MockCreditUseCase_Decrement_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCreditUseCase_Decrement_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockCreditUseCase_Decrement_Call {
	_c.Call.Return(run)
	return _c
}

// Adjust provides a mock function with given fields: ctx, userID, adj
func (_m *MockCreditUseCase) Adjust(ctx context.Context, userID string, adj usecase.CreditAdjustment) (int64, error) {
	ret := _m.Called(ctx, userID, adj)

	if len(ret) == 0 {
		panic("no return value specified for Adjust")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, usecase.CreditAdjustment) (int64, error)); ok {
		return rf(ctx, userID, adj)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, usecase.CreditAdjustment) int64); ok {
		r0 = rf(ctx, userID, adj)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, usecase.CreditAdjustment) error); ok {
		r1 = rf(ctx, userID, adj)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCreditUseCase_Adjust_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Adjust'
type MockCreditUseCase_Adjust_Call struct {
	*mock.Call
}

// Adjust is a helper method to define mock.On call
func (_e *MockCreditUseCase_Expecter) Adjust(ctx interface{}, userID interface{}, adj interface{}) *MockCreditUseCase_Adjust_Call {
	return &MockCreditUseCase_Adjust_Call{Call: _e.mock.On("Adjust", ctx, userID, adj)}
}

func (_c *MockCreditUseCase_Adjust_Call) Run(run func(ctx context.Context, userID string, adj usecase.CreditAdjustment)) *MockCreditUseCase_Adjust_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(usecase.CreditAdjustment))
	})
	return _c
}

func (_c *MockCreditUseCase_Adjust_Call) Return(_a0 int64, _a1 error) *MockCreditUseCase_Adjust_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCreditUseCase_Adjust_Call) RunAndReturn(run func(context.Context, string, usecase.CreditAdjustment) (int64, error)) *MockCreditUseCase_Adjust_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCreditUseCase creates a new instance of MockCreditUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCreditUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreditUseCase {
	m := &MockCreditUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
