package external

import (
	"context"

	external "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/external"

	mock "github.com/stretchr/testify/mock"
)

// MockRateLimiter is a mock type for the RateLimiter type
type MockRateLimiter struct {
	mock.Mock
}

type MockRateLimiter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRateLimiter) EXPECT() *MockRateLimiter_Expecter {
	return &MockRateLimiter_Expecter{mock: &_m.Mock}
}

// Allow provides a mock function with given fields: ctx, key, policy
func (_m *MockRateLimiter) Allow(ctx context.Context, key string, policy external.RateLimitPolicy) (*external.RateLimitDecision, error) {
	ret := _m.Called(ctx, key, policy)

	if len(ret) == 0 {
		panic("no return value specified for Allow")
	}

	var r0 *external.RateLimitDecision
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, external.RateLimitPolicy) (*external.RateLimitDecision, error)); ok {
		return rf(ctx, key, policy)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, external.RateLimitPolicy) *external.RateLimitDecision); ok {
		r0 = rf(ctx, key, policy)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*external.RateLimitDecision)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, external.RateLimitPolicy) error); ok {
		r1 = rf(ctx, key, policy)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRateLimiter_Allow_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Allow'
type MockRateLimiter_Allow_Call struct {
	*mock.Call
}

// Allow is a helper method to define mock.On call
func (_e *MockRateLimiter_Expecter) Allow(ctx interface{}, key interface{}, policy interface{}) *MockRateLimiter_Allow_Call {
	return &MockRateLimiter_Allow_Call{Call: _e.mock.On("Allow", ctx, key, policy)}
}

func (_c *MockRateLimiter_Allow_Call) Run(run func(ctx context.Context, key string, policy external.RateLimitPolicy)) *MockRateLimiter_Allow_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(external.RateLimitPolicy))
	})
	return _c
}

func (_c *MockRateLimiter_Allow_Call) Return(_a0 *external.RateLimitDecision, _a1 error) *MockRateLimiter_Allow_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRateLimiter_Allow_Call) RunAndReturn(run func(context.Context, string, external.RateLimitPolicy) (*external.RateLimitDecision, error)) *MockRateLimiter_Allow_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRateLimiter creates a new instance of MockRateLimiter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRateLimiter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRateLimiter {
	m := &MockRateLimiter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
