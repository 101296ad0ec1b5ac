package k8sinstr

import (
	"strings"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
)

// condition is the subset of a Kubernetes object's condition entry this
// package cares about; callers copy the fields of corev1.PodCondition,
// corev1.NodeCondition, appsv1.DeploymentCondition or
// batchv1.JobCondition into it.
type condition struct {
	Type    string
	Status  string
	Message string
	Reason  string
}

// conditionSensors builds one ConstantSensor per recognized condition: a
// type in passingIfTrue is healthy when its status is "True", a type in
// passingIfFalse is healthy when its status is "False". Unrecognized
// types are dropped.
func conditionSensors(conditions []condition, passingIfTrue, passingIfFalse map[string]bool) []alpacalert.Scanner {
	var sensors []alpacalert.Scanner
	for _, c := range conditions {
		var state alpacalert.State
		switch {
		case passingIfTrue[c.Type]:
			state = alpacalert.BoolState(strings.EqualFold(c.Status, "True"))
		case passingIfFalse[c.Type]:
			state = alpacalert.BoolState(strings.EqualFold(c.Status, "False"))
		default:
			continue
		}

		severity := alpacalert.SeverityInfo
		if state != alpacalert.Passing {
			severity = alpacalert.SeverityWarn
		}

		message := c.Message
		if message == "" {
			message = c.Reason
		}

		var logs []alpacalert.Log
		if message != "" {
			logs = []alpacalert.Log{{Message: message, Severity: severity}}
		}

		sensors = append(sensors, alpacalert.NewConstantSensor(c.Type, alpacalert.Status{State: state, Messages: logs}))
	}
	return sensors
}

func toSet(types ...string) map[string]bool {
	out := make(map[string]bool, len(types))
	for _, t := range types {
		out[t] = true
	}
	return out
}
