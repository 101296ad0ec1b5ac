package grafana

import "github.com/lilatomic/alpacalert/pkg/alpacalert"

// alertStatus maps a Grafana alert instance's evaluation state onto
// the three-valued algebra, matching original_source's grafana.py
// state table.
func alertStatus(a Alert, stateWhenPending alpacalert.State) alpacalert.Status {
	var state alpacalert.State
	switch a.State {
	case AlertStateNormal:
		state = alpacalert.Passing
	case AlertStateAlerting, AlertStateAlertingNoData, AlertStateAlertingError, AlertStateError, AlertStateNormalError:
		state = alpacalert.Failing
	case AlertStatePending, AlertStatePendingNoData:
		state = stateWhenPending
	case AlertStateNoData:
		state = alpacalert.Unknown
	default:
		state = alpacalert.Unknown
	}

	var severity alpacalert.Severity
	switch state {
	case alpacalert.Passing:
		severity = alpacalert.SeverityInfo
	case alpacalert.Failing:
		severity = alpacalert.SeverityError
	default:
		severity = alpacalert.SeverityWarn
	}

	return alpacalert.Status{State: state, Messages: []alpacalert.Log{{Message: string(a.State), Severity: severity}}}
}

// alertSensor wraps a single Grafana alert instance as a leaf Scanner.
type alertSensor struct {
	alert            Alert
	stateWhenPending alpacalert.State
}

func (s alertSensor) Name() string             { return s.alert.Name() }
func (s alertSensor) Status() alpacalert.Status { return alertStatus(s.alert, s.stateWhenPending) }
func (s alertSensor) Children() []alpacalert.Scanner { return nil }
