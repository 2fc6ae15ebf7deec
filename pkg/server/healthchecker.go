package server

import "context"

// HealthChecker reports whether a dependency can serve requests.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CompositeHealthChecker is healthy only when every checker is.
type CompositeHealthChecker []HealthChecker

func (c CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, hc := range c {
		if !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}

// CheckerOf returns v as a HealthChecker when it implements one, and an
// OkHealthChecker otherwise.
func CheckerOf(v any) HealthChecker {
	if hc, ok := v.(HealthChecker); ok {
		return hc
	}
	return NewOkHealthChecker()
}
