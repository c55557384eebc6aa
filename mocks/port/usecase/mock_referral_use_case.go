package usecase

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	usecase "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockReferralUseCase is a mock type for the ReferralUseCase type
type MockReferralUseCase struct {
	mock.Mock
}

type MockReferralUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReferralUseCase) EXPECT() *MockReferralUseCase_Expecter {
	return &MockReferralUseCase_Expecter{mock: &_m.Mock}
}

// GenerateCode provides a mock function with given fields: ctx, userID
func (_m *MockReferralUseCase) GenerateCode(ctx context.Context, userID string) (*usecase.ReferralSummary, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GenerateCode")
	}

	var r0 *usecase.ReferralSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*usecase.ReferralSummary, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *usecase.ReferralSummary); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ReferralSummary)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReferralUseCase_GenerateCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateCode'
type MockReferralUseCase_GenerateCode_Call struct {
	*mock.Call
}

// GenerateCode is a helper method to define mock.On call
func (_e *MockReferralUseCase_Expecter) GenerateCode(ctx interface{}, userID interface{}) *MockReferralUseCase_GenerateCode_Call {
	return &MockReferralUseCase_GenerateCode_Call{Call: _e.mock.On("GenerateCode", ctx, userID)}
}

func (_c *MockReferralUseCase_GenerateCode_Call) Run(run func(ctx context.Context, userID string)) *MockReferralUseCase_GenerateCode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReferralUseCase_GenerateCode_Call) Return(_a0 *usecase.ReferralSummary, _a1 error) *MockReferralUseCase_GenerateCode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReferralUseCase_GenerateCode_Call) RunAndReturn(run func(context.Context, string) (*usecase.ReferralSummary, error)) *MockReferralUseCase_GenerateCode_Call {
	_c.Call.Return(run)
	return _c
}

// TrackReferral provides a mock function with given fields: ctx, newUserID, code
func (_m *MockReferralUseCase) TrackReferral(ctx context.Context, newUserID string, code string) (string, error) {
	ret := _m.Called(ctx, newUserID, code)

	if len(ret) == 0 {
		panic("no return value specified for TrackReferral")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return rf(ctx, newUserID, code)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) string); ok {
		r0 = rf(ctx, newUserID, code)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, newUserID, code)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReferralUseCase_TrackReferral_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TrackReferral'
type MockReferralUseCase_TrackReferral_Call struct {
	*mock.Call
}

// TrackReferral is a helper method to define mock.On call
func (_e *MockReferralUseCase_Expecter) TrackReferral(ctx interface{}, newUserID interface{}, code interface{}) *MockReferralUseCase_TrackReferral_Call {
	return &MockReferralUseCase_TrackReferral_Call{Call: _e.mock.On("TrackReferral", ctx, newUserID, code)}
}

func (_c *MockReferralUseCase_TrackReferral_Call) Run(run func(ctx context.Context, newUserID string, code string)) *MockReferralUseCase_TrackReferral_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockReferralUseCase_TrackReferral_Call) Return(_a0 string, _a1 error) *MockReferralUseCase_TrackReferral_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReferralUseCase_TrackReferral_Call) RunAndReturn(run func(context.Context, string, string) (string, error)) *MockReferralUseCase_TrackReferral_Call {
	_c.Call.Return(run)
	return _c
}

// AwardIfEligible provides a mock function with given fields: ctx, userID
func (_m *MockReferralUseCase) AwardIfEligible(ctx context.Context, userID string) (*usecase.AwardResult, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for AwardIfEligible")
	}

	var r0 *usecase.AwardResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*usecase.AwardResult, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *usecase.AwardResult); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.AwardResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReferralUseCase_AwardIfEligible_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AwardIfEligible'
type MockReferralUseCase_AwardIfEligible_Call struct {
	*mock.Call
}

// AwardIfEligible is a helper method to define mock.On call
func (_e *MockReferralUseCase_Expecter) AwardIfEligible(ctx interface{}, userID interface{}) *MockReferralUseCase_AwardIfEligible_Call {
	return &MockReferralUseCase_AwardIfEligible_Call{Call: _e.mock.On("AwardIfEligible", ctx, userID)}
}

func (_c *MockReferralUseCase_AwardIfEligible_Call) Run(run func(ctx context.Context, userID string)) *MockReferralUseCase_AwardIfEligible_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReferralUseCase_AwardIfEligible_Call) Return(_a0 *usecase.AwardResult, _a1 error) *MockReferralUseCase_AwardIfEligible_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReferralUseCase_AwardIfEligible_Call) RunAndReturn(run func(context.Context, string) (*usecase.AwardResult, error)) *MockReferralUseCase_AwardIfEligible_Call {
	_c.Call.Return(run)
	return _c
}

// ForceReferral provides a mock function with given fields: ctx, req
func (_m *MockReferralUseCase) ForceReferral(ctx context.Context, req usecase.ForceReferralRequest) (*usecase.AwardResult, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for ForceReferral")
	}

	var r0 *usecase.AwardResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.ForceReferralRequest) (*usecase.AwardResult, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, usecase.ForceReferralRequest) *usecase.AwardResult); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.AwardResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, usecase.ForceReferralRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReferralUseCase_ForceReferral_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ForceReferral'
type MockReferralUseCase_ForceReferral_Call struct {
	*mock.Call
}

// ForceReferral is a helper method to define mock.On call
func (_e *MockReferralUseCase_Expecter) ForceReferral(ctx interface{}, req interface{}) *MockReferralUseCase_ForceReferral_Call {
	return &MockReferralUseCase_ForceReferral_Call{Call: _e.mock.On("ForceReferral", ctx, req)}
}

func (_c *MockReferralUseCase_ForceReferral_Call) Run(run func(ctx context.Context, req usecase.ForceReferralRequest)) *MockReferralUseCase_ForceReferral_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(usecase.ForceReferralRequest))
	})
	return _c
}

func (_c *MockReferralUseCase_ForceReferral_Call) Return(_a0 *usecase.AwardResult, _a1 error) *MockReferralUseCase_ForceReferral_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReferralUseCase_ForceReferral_Call) RunAndReturn(run func(context.Context, usecase.ForceReferralRequest) (*usecase.AwardResult, error)) *MockReferralUseCase_ForceReferral_Call {
	_c.Call.Return(run)
	return _c
}

// ListByReferrer provides a mock function with given fields: ctx, referrerID
func (_m *MockReferralUseCase) ListByReferrer(ctx context.Context, referrerID string) ([]*entity.Referral, error) {
	ret := _m.Called(ctx, referrerID)

	if len(ret) == 0 {
		panic("no return value specified for ListByReferrer")
	}

	var r0 []*entity.Referral
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*entity.Referral, error)); ok {
		return rf(ctx, referrerID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []*entity.Referral); ok {
		r0 = rf(ctx, referrerID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Referral)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, referrerID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockReferralUseCase_ListByReferrer_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByReferrer'
type MockReferralUseCase_ListByReferrer_Call struct {
	*mock.Call
}

// ListByReferrer is a helper method to define mock.On call
func (_e *MockReferralUseCase_Expecter) ListByReferrer(ctx interface{}, referrerID interface{}) *MockReferralUseCase_ListByReferrer_Call {
	return &MockReferralUseCase_ListByReferrer_Call{Call: _e.mock.On("ListByReferrer", ctx, referrerID)}
}

func (_c *MockReferralUseCase_ListByReferrer_Call) Run(run func(ctx context.Context, referrerID string)) *MockReferralUseCase_ListByReferrer_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockReferralUseCase_ListByReferrer_Call) Return(_a0 []*entity.Referral, _a1 error) *MockReferralUseCase_ListByReferrer_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockReferralUseCase_ListByReferrer_Call) RunAndReturn(run func(context.Context, string) ([]*entity.Referral, error)) *MockReferralUseCase_ListByReferrer_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockReferralUseCase creates a new instance of MockReferralUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockReferralUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReferralUseCase {
	m := &MockReferralUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
