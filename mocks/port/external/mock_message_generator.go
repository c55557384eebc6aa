package external

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockMessageGenerator is a mock type for the MessageGenerator type
type MockMessageGenerator struct {
	mock.Mock
}

type MockMessageGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageGenerator) EXPECT() *MockMessageGenerator_Expecter {
	return &MockMessageGenerator_Expecter{mock: &_m.Mock}
}

// Generate provides a mock function with given fields: ctx, req
func (_m *MockMessageGenerator) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GeneratedMessage, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Generate")
	}

	var r0 *entity.GeneratedMessage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.GenerationRequest) (*entity.GeneratedMessage, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *entity.GenerationRequest) *entity.GeneratedMessage); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.GeneratedMessage)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *entity.GenerationRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMessageGenerator_Generate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Generate'
type MockMessageGenerator_Generate_Call struct {
	*mock.Call
}

// Generate is a helper method to define mock.On call
func (_e *MockMessageGenerator_Expecter) Generate(ctx interface{}, req interface{}) *MockMessageGenerator_Generate_Call {
	return &MockMessageGenerator_Generate_Call{Call: _e.mock.On("Generate", ctx, req)}
}

func (_c *MockMessageGenerator_Generate_Call) Run(run func(ctx context.Context, req *entity.GenerationRequest)) *MockMessageGenerator_Generate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.GenerationRequest))
	})
	return _c
}

func (_c *MockMessageGenerator_Generate_Call) Return(_a0 *entity.GeneratedMessage, _a1 error) *MockMessageGenerator_Generate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMessageGenerator_Generate_Call) RunAndReturn(run func(context.Context, *entity.GenerationRequest) (*entity.GeneratedMessage, error)) *MockMessageGenerator_Generate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMessageGenerator creates a new instance of MockMessageGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMessageGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageGenerator {
	m := &MockMessageGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
