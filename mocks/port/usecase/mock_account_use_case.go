package usecase

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	usecase "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAccountUseCase is a mock type for the AccountUseCase type
type MockAccountUseCase struct {
	mock.Mock
}

type MockAccountUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUseCase) EXPECT() *MockAccountUseCase_Expecter {
	return &MockAccountUseCase_Expecter{mock: &_m.Mock}
}

// Ensure provides a mock function with given fields: ctx, userID, email
func (_m *MockAccountUseCase) Ensure(ctx context.Context, userID string, email string) (*entity.Account, bool, error) {
	ret := _m.Called(ctx, userID, email)

	if len(ret) == 0 {
		panic("no return value specified for Ensure")
	}

	var r0 *entity.Account
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*entity.Account, bool, error)); ok {
		return rf(ctx, userID, email)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *entity.Account); ok {
		r0 = rf(ctx, userID, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Account)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, string) bool); ok {
		r1 = rf(ctx, userID, email)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(bool)
	}
	if rf, ok := ret.Get(2).(func(context.Context, string, string) error); ok {
		r2 = rf(ctx, userID, email)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockAccountUseCase_Ensure_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Ensure'
type MockAccountUseCase_Ensure_Call struct {
	*mock.Call
}

// Ensure is a helper method to define mock.On call
func (_e *MockAccountUseCase_Expecter) Ensure(ctx interface{}, userID interface{}, email interface{}) *MockAccountUseCase_Ensure_Call {
	return &MockAccountUseCase_Ensure_Call{Call: _e.mock.On("Ensure", ctx, userID, email)}
}

func (_c *MockAccountUseCase_Ensure_Call) Run(run func(ctx context.Context, userID string, email string)) *MockAccountUseCase_Ensure_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockAccountUseCase_Ensure_Call) Return(_a0 *entity.Account, _a1 bool, _a2 error) *MockAccountUseCase_Ensure_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockAccountUseCase_Ensure_Call) RunAndReturn(run func(context.Context, string, string) (*entity.Account, bool, error)) *MockAccountUseCase_Ensure_Call {
	_c.Call.Return(run)
	return _c
}

// Signup provides a mock function with given fields: ctx, identity, referralCode
func (_m *MockAccountUseCase) Signup(ctx context.Context, identity *entity.Identity, referralCode string) (*usecase.SignupResult, error) {
	ret := _m.Called(ctx, identity, referralCode)

	if len(ret) == 0 {
		panic("no return value specified for Signup")
	}

	var r0 *usecase.SignupResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Identity, string) (*usecase.SignupResult, error)); ok {
		return rf(ctx, identity, referralCode)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Identity, string) *usecase.SignupResult); ok {
		r0 = rf(ctx, identity, referralCode)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.SignupResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *entity.Identity, string) error); ok {
		r1 = rf(ctx, identity, referralCode)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUseCase_Signup_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Signup'
type MockAccountUseCase_Signup_Call struct {
	*mock.Call
}

// Signup is a helper method to define mock.On call
func (_e *MockAccountUseCase_Expecter) Signup(ctx interface{}, identity interface{}, referralCode interface{}) *MockAccountUseCase_Signup_Call {
	return &MockAccountUseCase_Signup_Call{Call: _e.mock.On("Signup", ctx, identity, referralCode)}
}

func (_c *MockAccountUseCase_Signup_Call) Run(run func(ctx context.Context, identity *entity.Identity, referralCode string)) *MockAccountUseCase_Signup_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Identity), args[2].(string))
	})
	return _c
}

func (_c *MockAccountUseCase_Signup_Call) Return(_a0 *usecase.SignupResult, _a1 error) *MockAccountUseCase_Signup_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUseCase_Signup_Call) RunAndReturn(run func(context.Context, *entity.Identity, string) (*usecase.SignupResult, error)) *MockAccountUseCase_Signup_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountUseCase creates a new instance of MockAccountUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUseCase {
	m := &MockAccountUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
