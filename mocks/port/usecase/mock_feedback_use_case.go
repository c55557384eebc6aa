package usecase

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	usecase "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockFeedbackUseCase is a mock type for the FeedbackUseCase type
type MockFeedbackUseCase struct {
	mock.Mock
}

type MockFeedbackUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFeedbackUseCase) EXPECT() *MockFeedbackUseCase_Expecter {
	return &MockFeedbackUseCase_Expecter{mock: &_m.Mock}
}

// Submit provides a mock function with given fields: ctx, req
func (_m *MockFeedbackUseCase) Submit(ctx context.Context, req usecase.FeedbackRequest) (*entity.Feedback, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Submit")
	}

	var r0 *entity.Feedback
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.FeedbackRequest) (*entity.Feedback, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.FeedbackRequest) *entity.Feedback); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Feedback)
	}
	if rf, ok := ret.Get(1).(func(context.Context, usecase.FeedbackRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFeedbackUseCase_Submit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Submit'
type MockFeedbackUseCase_Submit_Call struct {
	*mock.Call
}

// Submit is a helper method to define mock.On call
func (_e *MockFeedbackUseCase_Expecter) Submit(ctx interface{}, req interface{}) *MockFeedbackUseCase_Submit_Call {
	return &MockFeedbackUseCase_Submit_Call{Call: _e.mock.On("Submit", ctx, req)}
}

func (_c *MockFeedbackUseCase_Submit_Call) Run(run func(ctx context.Context, req usecase.FeedbackRequest)) *MockFeedbackUseCase_Submit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.FeedbackRequest))
	})
	return _c
}

func (_c *MockFeedbackUseCase_Submit_Call) Return(_a0 *entity.Feedback, _a1 error) *MockFeedbackUseCase_Submit_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFeedbackUseCase_Submit_Call) RunAndReturn(run func(context.Context, usecase.FeedbackRequest) (*entity.Feedback, error)) *MockFeedbackUseCase_Submit_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockFeedbackUseCase creates a new instance of MockFeedbackUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFeedbackUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFeedbackUseCase {
	m := &MockFeedbackUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
