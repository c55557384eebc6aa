package external

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockCheckoutProvider is a mock type for the CheckoutProvider type
type MockCheckoutProvider struct {
	mock.Mock
}

type MockCheckoutProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCheckoutProvider) EXPECT() *MockCheckoutProvider_Expecter {
	return &MockCheckoutProvider_Expecter{mock: &_m.Mock}
}

// GetCheckoutSession provides a mock function with given fields: ctx, sessionID
func (_m *MockCheckoutProvider) GetCheckoutSession(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetCheckoutSession")
	}

	var r0 *entity.CheckoutSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.CheckoutSession, error)); ok {
		return rf(ctx, sessionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.CheckoutSession); ok {
		r0 = rf(ctx, sessionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.CheckoutSession)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCheckoutProvider_GetCheckoutSession_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCheckoutSession'
type MockCheckoutProvider_GetCheckoutSession_Call struct {
	*mock.Call
}

// GetCheckoutSession is a helper method to define mock.On call
func (_e *MockCheckoutProvider_Expecter) GetCheckoutSession(ctx interface{}, sessionID interface{}) *MockCheckoutProvider_GetCheckoutSession_Call {
	return &MockCheckoutProvider_GetCheckoutSession_Call{Call: _e.mock.On("GetCheckoutSession", ctx, sessionID)}
}

func (_c *MockCheckoutProvider_GetCheckoutSession_Call) Run(run func(ctx context.Context, sessionID string)) *MockCheckoutProvider_GetCheckoutSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockCheckoutProvider_GetCheckoutSession_Call) Return(_a0 *entity.CheckoutSession, _a1 error) *MockCheckoutProvider_GetCheckoutSession_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCheckoutProvider_GetCheckoutSession_Call) RunAndReturn(run func(context.Context, string) (*entity.CheckoutSession, error)) *MockCheckoutProvider_GetCheckoutSession_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCheckoutProvider creates a new instance of MockCheckoutProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCheckoutProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckoutProvider {
	m := &MockCheckoutProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
