package alpacalert_test

import (
	"testing"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
)

func TestAllOfFailingDominates(t *testing.T) {
	s := alpacalert.NewAllOf("sys", []alpacalert.Scanner{
		alpacalert.PassingSensor("a"),
		alpacalert.FailingSensor("b"),
	})
	if got := s.Status().State; got != alpacalert.Failing {
		t.Errorf("AllOf.Status().State = %v, want Failing", got)
	}
}

func TestAllOfEmptyIsPassing(t *testing.T) {
	s := alpacalert.NewAllOf("sys", nil)
	if got := s.Status().State; got != alpacalert.Passing {
		t.Errorf("empty AllOf.Status().State = %v, want Passing", got)
	}
}

func TestAnyOfPassingDominates(t *testing.T) {
	s := alpacalert.NewAnyOf("sys", []alpacalert.Scanner{
		alpacalert.FailingSensor("a"),
		alpacalert.PassingSensor("b"),
	})
	if got := s.Status().State; got != alpacalert.Passing {
		t.Errorf("AnyOf.Status().State = %v, want Passing", got)
	}
}

func TestAnyOfEmptyIsFailing(t *testing.T) {
	s := alpacalert.NewAnyOf("sys", nil)
	if got := s.Status().State; got != alpacalert.Failing {
		t.Errorf("empty AnyOf.Status().State = %v, want Failing", got)
	}
}

func TestBasicServiceForwards(t *testing.T) {
	sys := alpacalert.NewAllOf("sys", []alpacalert.Scanner{alpacalert.FailingSensor("a")})
	svc := alpacalert.NewBasicService("svc", sys)

	if got := svc.Status().State; got != alpacalert.Failing {
		t.Errorf("BasicService.Status().State = %v, want Failing", got)
	}
	if got := svc.Children(); len(got) != 1 || got[0] != alpacalert.Scanner(sys) {
		t.Errorf("BasicService.Children() = %v, want [sys]", got)
	}
}

func TestConstantSensorIsFixed(t *testing.T) {
	s := alpacalert.PassingSensor("leaf", alpacalert.Log{Message: "hi", Severity: alpacalert.SeverityInfo})
	if s.Children() != nil {
		t.Errorf("ConstantSensor.Children() = %v, want nil", s.Children())
	}
	if got := s.Status(); got.State != alpacalert.Passing || len(got.Messages) != 1 {
		t.Errorf("ConstantSensor.Status() = %+v, want Passing with 1 message", got)
	}
}
