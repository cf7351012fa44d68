package eventkit

import (
	"fmt"
	"strings"
)

// Priority controls where a handler runs within an emission.
// Lower values run earlier; ties run in registration order.
type Priority int

// Priority tiers, highest precedence first.
const (
	// PriorityMonitor runs before every other tier. Intended for
	// observers that must see each event before regular handlers can
	// react to it (audit trails, tracing, invariant checks).
	PriorityMonitor Priority = iota
	PriorityHighest
	PriorityHigh
	// PriorityNormal is the default tier for Register.
	PriorityNormal
	PriorityLow
	// PriorityLowest runs after every other tier.
	PriorityLowest
)

// String returns the tier name used in logs and spans.
func (p Priority) String() string {
	switch p {
	case PriorityMonitor:
		return "monitor"
	case PriorityHighest:
		return "highest"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	case PriorityLowest:
		return "lowest"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Valid reports whether p is one of the six defined tiers.
func (p Priority) Valid() bool {
	return p >= PriorityMonitor && p <= PriorityLowest
}

// clamp bounds p to the defined tiers. Registration never fails, so
// out-of-range values snap to the nearest tier instead of erroring.
func (p Priority) clamp() Priority {
	if p < PriorityMonitor {
		return PriorityMonitor
	}
	if p > PriorityLowest {
		return PriorityLowest
	}
	return p
}

// ParsePriority maps a tier name to its Priority. Matching is
// case-insensitive. Recognized names: "monitor", "highest", "high",
// "normal", "low", "lowest".
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monitor":
		return PriorityMonitor, nil
	case "highest":
		return PriorityHighest, nil
	case "high":
		return PriorityHigh, nil
	case "normal":
		return PriorityNormal, nil
	case "low":
		return PriorityLow, nil
	case "lowest":
		return PriorityLowest, nil
	}
	return PriorityNormal, fmt.Errorf("unknown priority %q", s)
}
