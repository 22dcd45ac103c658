package dispatch

import (
	"context"
)

type ServiceMock struct {
	Events []Event
}

func NewServiceMock() *ServiceMock {
	return &ServiceMock{}
}

func (sm *ServiceMock) Dispatch(_ context.Context, evt Event) (err error) {
	sm.Events = append(sm.Events, evt)
	return
}
