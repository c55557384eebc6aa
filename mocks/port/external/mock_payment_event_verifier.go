package external

import (
	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockPaymentEventVerifier is a mock type for the PaymentEventVerifier type
type MockPaymentEventVerifier struct {
	mock.Mock
}

type MockPaymentEventVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentEventVerifier) EXPECT() *MockPaymentEventVerifier_Expecter {
	return &MockPaymentEventVerifier_Expecter{mock: &_m.Mock}
}

// VerifyEvent provides a mock function with given fields: payload, signatureHeader
func (_m *MockPaymentEventVerifier) VerifyEvent(payload []byte, signatureHeader string) (*entity.PaymentEvent, error) {
	ret := _m.Called(payload, signatureHeader)

	if len(ret) == 0 {
		panic("no return value specified for VerifyEvent")
	}

	var r0 *entity.PaymentEvent
	var r1 error
	if rf, ok := ret.Get(0).(func([]byte, string) (*entity.PaymentEvent, error)); ok {
		return rf(payload, signatureHeader)
	}
	if rf, ok := ret.Get(0).(func([]byte, string) *entity.PaymentEvent); ok {
		r0 = rf(payload, signatureHeader)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.PaymentEvent)
	}
	if rf, ok := ret.Get(1).(func([]byte, string) error); ok {
		r1 = rf(payload, signatureHeader)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentEventVerifier_VerifyEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyEvent'
type MockPaymentEventVerifier_VerifyEvent_Call struct {
	*mock.Call
}

// VerifyEvent is a helper method to define mock.On call
func (_e *MockPaymentEventVerifier_Expecter) VerifyEvent(payload interface{}, signatureHeader interface{}) *MockPaymentEventVerifier_VerifyEvent_Call {
	return &MockPaymentEventVerifier_VerifyEvent_Call{Call: _e.mock.On("VerifyEvent", payload, signatureHeader)}
}

func (_c *MockPaymentEventVerifier_VerifyEvent_Call) Run(run func(payload []byte, signatureHeader string)) *MockPaymentEventVerifier_VerifyEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]byte), args[1].(string))
	})
	return _c
}

func (_c *MockPaymentEventVerifier_VerifyEvent_Call) Return(_a0 *entity.PaymentEvent, _a1 error) *MockPaymentEventVerifier_VerifyEvent_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentEventVerifier_VerifyEvent_Call) RunAndReturn(run func([]byte, string) (*entity.PaymentEvent, error)) *MockPaymentEventVerifier_VerifyEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPaymentEventVerifier creates a new instance of MockPaymentEventVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentEventVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentEventVerifier {
	m := &MockPaymentEventVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
