package external

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockOperatorVerifier is a mock type for the OperatorVerifier type
type MockOperatorVerifier struct {
	mock.Mock
}

type MockOperatorVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOperatorVerifier) EXPECT() *MockOperatorVerifier_Expecter {
	return &MockOperatorVerifier_Expecter{mock: &_m.Mock}
}

// VerifyOperator provides a mock function with given fields: ctx, token
func (_m *MockOperatorVerifier) VerifyOperator(ctx context.Context, token string) (string, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for VerifyOperator")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, token)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOperatorVerifier_VerifyOperator_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyOperator'
type MockOperatorVerifier_VerifyOperator_Call struct {
	*mock.Call
}

// VerifyOperator is a helper method to define mock.On call
func (_e *MockOperatorVerifier_Expecter) VerifyOperator(ctx interface{}, token interface{}) *MockOperatorVerifier_VerifyOperator_Call {
	return &MockOperatorVerifier_VerifyOperator_Call{Call: _e.mock.On("VerifyOperator", ctx, token)}
}

func (_c *MockOperatorVerifier_VerifyOperator_Call) Run(run func(ctx context.Context, token string)) *MockOperatorVerifier_VerifyOperator_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockOperatorVerifier_VerifyOperator_Call) Return(_a0 string, _a1 error) *MockOperatorVerifier_VerifyOperator_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockOperatorVerifier_VerifyOperator_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockOperatorVerifier_VerifyOperator_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOperatorVerifier creates a new instance of MockOperatorVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOperatorVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOperatorVerifier {
	m := &MockOperatorVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
