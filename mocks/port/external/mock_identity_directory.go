package external

import (
	"context"

	entity "github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockIdentityDirectory is a mock type for the IdentityDirectory type
type MockIdentityDirectory struct {
	mock.Mock
}

type MockIdentityDirectory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityDirectory) EXPECT() *MockIdentityDirectory_Expecter {
	return &MockIdentityDirectory_Expecter{mock: &_m.Mock}
}

// ListIdentities provides a mock function with given fields: ctx, pageToken, pageSize
func (_m *MockIdentityDirectory) ListIdentities(ctx context.Context, pageToken string, pageSize int) ([]entity.IdentityRecord, string, error) {
	ret := _m.Called(ctx, pageToken, pageSize)

	if len(ret) == 0 {
		panic("no return value specified for ListIdentities")
	}

	var r0 []entity.IdentityRecord
	var r1 string
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]entity.IdentityRecord, string, error)); ok {
		return rf(ctx, pageToken, pageSize)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []entity.IdentityRecord); ok {
		r0 = rf(ctx, pageToken, pageSize)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.IdentityRecord)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, int) string); ok {
		r1 = rf(ctx, pageToken, pageSize)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(string)
	}
	if rf, ok := ret.Get(2).(func(context.Context, string, int) error); ok {
		r2 = rf(ctx, pageToken, pageSize)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockIdentityDirectory_ListIdentities_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListIdentities'
type MockIdentityDirectory_ListIdentities_Call struct {
	*mock.Call
}

// ListIdentities is a helper method to define mock.On call
func (_e *MockIdentityDirectory_Expecter) ListIdentities(ctx interface{}, pageToken interface{}, pageSize interface{}) *MockIdentityDirectory_ListIdentities_Call {
	return &MockIdentityDirectory_ListIdentities_Call{Call: _e.mock.On("ListIdentities", ctx, pageToken, pageSize)}
}

func (_c *MockIdentityDirectory_ListIdentities_Call) Run(run func(ctx context.Context, pageToken string, pageSize int)) *MockIdentityDirectory_ListIdentities_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockIdentityDirectory_ListIdentities_Call) Return(_a0 []entity.IdentityRecord, _a1 string, _a2 error) *MockIdentityDirectory_ListIdentities_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockIdentityDirectory_ListIdentities_Call) RunAndReturn(run func(context.Context, string, int) ([]entity.IdentityRecord, string, error)) *MockIdentityDirectory_ListIdentities_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteIdentity provides a mock function with given fields: ctx, userID
func (_m *MockIdentityDirectory) DeleteIdentity(ctx context.Context, userID string) error {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteIdentity")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockIdentityDirectory_DeleteIdentity_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteIdentity'
type MockIdentityDirectory_DeleteIdentity_Call struct {
	*mock.Call
}

// DeleteIdentity is a helper method to define mock.On call
func (_e *MockIdentityDirectory_Expecter) DeleteIdentity(ctx interface{}, userID interface{}) *MockIdentityDirectory_DeleteIdentity_Call {
	return &MockIdentityDirectory_DeleteIdentity_Call{Call: _e.mock.On("DeleteIdentity", ctx, userID)}
}

func (_c *MockIdentityDirectory_DeleteIdentity_Call) Run(run func(ctx context.Context, userID string)) *MockIdentityDirectory_DeleteIdentity_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockIdentityDirectory_DeleteIdentity_Call) Return(_a0 error) *MockIdentityDirectory_DeleteIdentity_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockIdentityDirectory_DeleteIdentity_Call) RunAndReturn(run func(context.Context, string) error) *MockIdentityDirectory_DeleteIdentity_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentityDirectory creates a new instance of MockIdentityDirectory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityDirectory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityDirectory {
	m := &MockIdentityDirectory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
