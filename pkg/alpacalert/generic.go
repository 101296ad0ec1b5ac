package alpacalert

// AllOf is a System that reduces its children with And: it is PASSING
// only if every child is PASSING.
type AllOf struct {
	NameValue string
	Scanners  []Scanner
}

func NewAllOf(name string, scanners []Scanner) *AllOf {
	return &AllOf{NameValue: name, Scanners: scanners}
}

func (s *AllOf) Name() string { return s.NameValue }

func (s *AllOf) Status() Status {
	states := make([]State, len(s.Scanners))
	for i, c := range s.Scanners {
		states[i] = c.Status().State
	}
	return Status{State: ReduceAnd(states)}
}

func (s *AllOf) Children() []Scanner { return s.Scanners }

// AnyOf is a System that reduces its children with Or: it is PASSING
// if any child is PASSING.
type AnyOf struct {
	NameValue string
	Scanners  []Scanner
}

func NewAnyOf(name string, scanners []Scanner) *AnyOf {
	return &AnyOf{NameValue: name, Scanners: scanners}
}

func (s *AnyOf) Name() string { return s.NameValue }

func (s *AnyOf) Status() Status {
	states := make([]State, len(s.Scanners))
	for i, c := range s.Scanners {
		states[i] = c.Status().State
	}
	return Status{State: ReduceOr(states)}
}

func (s *AnyOf) Children() []Scanner { return s.Scanners }

// ConstantSensor is a Sensor that always reports the same baked
// Status, regardless of how many times it is evaluated.
type ConstantSensor struct {
	NameValue string
	Value     Status
}

func NewConstantSensor(name string, value Status) *ConstantSensor {
	return &ConstantSensor{NameValue: name, Value: value}
}

// PassingSensor builds a ConstantSensor reporting PASSING with the
// given messages.
func PassingSensor(name string, messages ...Log) *ConstantSensor {
	return NewConstantSensor(name, Status{State: Passing, Messages: messages})
}

// FailingSensor builds a ConstantSensor reporting FAILING with the
// given messages.
func FailingSensor(name string, messages ...Log) *ConstantSensor {
	return NewConstantSensor(name, Status{State: Failing, Messages: messages})
}

func (s *ConstantSensor) Name() string        { return s.NameValue }
func (s *ConstantSensor) Status() Status      { return s.Value }
func (s *ConstantSensor) Children() []Scanner { return nil }

// BasicService is a Service that forwards entirely to a single wrapped
// System.
type BasicService struct {
	NameValue string
	System    Scanner
}

func NewBasicService(name string, system Scanner) *BasicService {
	return &BasicService{NameValue: name, System: system}
}

func (s *BasicService) Name() string   { return s.NameValue }
func (s *BasicService) Status() Status { return s.System.Status() }
func (s *BasicService) Children() []Scanner {
	return []Scanner{s.System}
}
