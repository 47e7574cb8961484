package telemetry

import (
	"reflect"
	"time"

	"github.com/golang/mock/gomock"
)

// MockSink is a hand-written stand-in for what mockgen would generate
// from the Sink interface, kept small enough not to need the
// generator invoked as a build step.
type MockSink struct {
	ctrl     *gomock.Controller
	recorder *MockSinkMockRecorder
}

type MockSinkMockRecorder struct {
	mock *MockSink
}

func NewMockSink(ctrl *gomock.Controller) *MockSink {
	m := &MockSink{ctrl: ctrl}
	m.recorder = &MockSinkMockRecorder{mock: m}
	return m
}

func (m *MockSink) EXPECT() *MockSinkMockRecorder { return m.recorder }

func (m *MockSink) ObserveOp(op string, width int, dur time.Duration, err error) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveOp", op, width, dur, err)
}

func (r *MockSinkMockRecorder) ObserveOp(op, width, dur, err interface{}) *gomock.Call {
	return r.mock.ctrl.RecordCallWithMethodType(r.mock, "ObserveOp",
		reflect.TypeOf((*MockSink)(nil).ObserveOp), op, width, dur, err)
}
