package usecase

import (
	"context"

	usecase "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockPaymentUseCase is a mock type for the PaymentUseCase type
type MockPaymentUseCase struct {
	mock.Mock
}

type MockPaymentUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentUseCase) EXPECT() *MockPaymentUseCase_Expecter {
	return &MockPaymentUseCase_Expecter{mock: &_m.Mock}
}

// HandleWebhook provides a mock function with given fields: ctx, payload, signatureHeader
func (_m *MockPaymentUseCase) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*usecase.ReconciliationOutcome, error) {
	ret := _m.Called(ctx, payload, signatureHeader)

	if len(ret) == 0 {
		panic("no return value specified for HandleWebhook")
	}

	var r0 *usecase.ReconciliationOutcome
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) (*usecase.ReconciliationOutcome, error)); ok {
		return rf(ctx, payload, signatureHeader)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) *usecase.ReconciliationOutcome); ok {
		r0 = rf(ctx, payload, signatureHeader)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ReconciliationOutcome)
	}
	if rf, ok := ret.Get(1).(func(context.Context, []byte, string) error); ok {
		r1 = rf(ctx, payload, signatureHeader)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentUseCase_HandleWebhook_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HandleWebhook'
type MockPaymentUseCase_HandleWebhook_Call struct {
	*mock.Call
}

// HandleWebhook is a helper method to define mock.On call
func (_e *MockPaymentUseCase_Expecter) HandleWebhook(ctx interface{}, payload interface{}, signatureHeader interface{}) *MockPaymentUseCase_HandleWebhook_Call {
	return &MockPaymentUseCase_HandleWebhook_Call{Call: _e.mock.On("HandleWebhook", ctx, payload, signatureHeader)}
}

func (_c *MockPaymentUseCase_HandleWebhook_Call) Run(run func(ctx context.Context, payload []byte, signatureHeader string)) *MockPaymentUseCase_HandleWebhook_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]byte), args[2].(string))
	})
	return _c
}

func (_c *MockPaymentUseCase_HandleWebhook_Call) Return(_a0 *usecase.ReconciliationOutcome, _a1 error) *MockPaymentUseCase_HandleWebhook_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentUseCase_HandleWebhook_Call) RunAndReturn(run func(context.Context, []byte, string) (*usecase.ReconciliationOutcome, error)) *MockPaymentUseCase_HandleWebhook_Call {
	_c.Call.Return(run)
	return _c
}

// RepairPayment provides a mock function with given fields: ctx, sessionID, creditsOverride
func (_m *MockPaymentUseCase) RepairPayment(ctx context.Context, sessionID string, creditsOverride int64) (*usecase.ReconciliationOutcome, error) {
	ret := _m.Called(ctx, sessionID, creditsOverride)

	if len(ret) == 0 {
		panic("no return value specified for RepairPayment")
	}

	var r0 *usecase.ReconciliationOutcome
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) (*usecase.ReconciliationOutcome, error)); ok {
		return rf(ctx, sessionID, creditsOverride)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) *usecase.ReconciliationOutcome); ok {
		r0 = rf(ctx, sessionID, creditsOverride)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ReconciliationOutcome)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, sessionID, creditsOverride)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentUseCase_RepairPayment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RepairPayment'
type MockPaymentUseCase_RepairPayment_Call struct {
	*mock.Call
}

// RepairPayment is a helper method to define mock.On call
func (_e *MockPaymentUseCase_Expecter) RepairPayment(ctx interface{}, sessionID interface{}, creditsOverride interface{}) *MockPaymentUseCase_RepairPayment_Call {
	return &MockPaymentUseCase_RepairPayment_Call{Call: _e.mock.On("RepairPayment", ctx, sessionID, creditsOverride)}
}

func (_c *MockPaymentUseCase_RepairPayment_Call) Run(run func(ctx context.Context, sessionID string, creditsOverride int64)) *MockPaymentUseCase_RepairPayment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})
	return _c
}

func (_c *MockPaymentUseCase_RepairPayment_Call) Return(_a0 *usecase.ReconciliationOutcome, _a1 error) *MockPaymentUseCase_RepairPayment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentUseCase_RepairPayment_Call) RunAndReturn(run func(context.Context, string, int64) (*usecase.ReconciliationOutcome, error)) *MockPaymentUseCase_RepairPayment_Call {
	_c.Call.Return(run)
	return _c
}

// Diagnostics provides a mock function with given fields: ctx, recentLimit
func (_m *MockPaymentUseCase) Diagnostics(ctx context.Context, recentLimit int) (*usecase.WebhookDiagnostics, error) {
	ret := _m.Called(ctx, recentLimit)

	if len(ret) == 0 {
		panic("no return value specified for Diagnostics")
	}

	var r0 *usecase.WebhookDiagnostics
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*usecase.WebhookDiagnostics, error)); ok {
		return rf(ctx, recentLimit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *usecase.WebhookDiagnostics); ok {
		r0 = rf(ctx, recentLimit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.WebhookDiagnostics)
	}
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, recentLimit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentUseCase_Diagnostics_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Diagnostics'
type MockPaymentUseCase_Diagnostics_Call struct {
	*mock.Call
}

// Diagnostics is a helper method to define mock.On call
func (_e *MockPaymentUseCase_Expecter) Diagnostics(ctx interface{}, recentLimit interface{}) *MockPaymentUseCase_Diagnostics_Call {
	return &MockPaymentUseCase_Diagnostics_Call{Call: _e.mock.On("Diagnostics", ctx, recentLimit)}
}

func (_c *MockPaymentUseCase_Diagnostics_Call) Run(run func(ctx context.Context, recentLimit int)) *MockPaymentUseCase_Diagnostics_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})
	return _c
}

func (_c *MockPaymentUseCase_Diagnostics_Call) Return(_a0 *usecase.WebhookDiagnostics, _a1 error) *MockPaymentUseCase_Diagnostics_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentUseCase_Diagnostics_Call) RunAndReturn(run func(context.Context, int) (*usecase.WebhookDiagnostics, error)) *MockPaymentUseCase_Diagnostics_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPaymentUseCase creates a new instance of MockPaymentUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentUseCase {
	m := &MockPaymentUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
