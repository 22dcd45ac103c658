package membership

import (
	"context"
)

const MockUserIdAllowed int64 = 101
const MockUserIdDenied int64 = 102
const MockUserIdFail int64 = 103

type ServiceMock struct {
	Calls int
}

func NewServiceMock() *ServiceMock {
	return &ServiceMock{}
}

func (sm *ServiceMock) Check(_ context.Context, userId int64) (r Result, err error) {
	sm.Calls++
	switch userId {
	case MockUserIdAllowed:
		r = ResultAllowed
	case MockUserIdFail:
		r = ResultCheckFailed
		err = ErrCheckFailed
	default:
		r = ResultDenied
	}
	return
}
