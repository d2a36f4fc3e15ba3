package tlqsched

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Priority represents the scheduling urgency of a [Process]. Lower values are
// more urgent.
type Priority int

// ParsePriority creates a new [Priority] from the given value. Strings may hold
// either a number or one of the named levels in [Priorities].
func ParsePriority(p any) (Priority, error) {
	switch v := p.(type) {
	case Priority:
		return v, nil
	case int:
		return Priority(v), nil
	case int64:
		return Priority(int(v)), nil
	case int32:
		return Priority(int(v)), nil
	case string:
		return stringToPriority(v)
	case fmt.Stringer:
		return stringToPriority(v.String())
	default:
		return 0, fmt.Errorf("unsupported priority type %T", p)
	}
}

// Preempts reports whether p is strictly more urgent than other. Equal
// priorities never preempt.
func (p Priority) Preempts(other Priority) bool {
	return p < other
}

func (p Priority) String() string {
	if name, ok := strPriorityMap[p]; ok {
		return name
	}
	return strconv.Itoa(int(p))
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(p))), nil
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if f, ok := raw.(float64); ok {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return fmt.Errorf("invalid priority %s: must be an integer", b)
		}
		raw = int(f)
	}
	v, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *Priority) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: priority must be a scalar", node.Line)
	}
	v, err := stringToPriority(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = v
	return nil
}

// Priorities holds the named priority levels. It may be used to reference a
// [Priority] value by name.
var Priorities = priorityContainer{
	Critical: priorityCritical,
	High:     priorityHigh,
	Normal:   priorityNormal,
	Low:      priorityLow,
	VeryLow:  priorityVeryLow,
}

// All returns all named priorities, most urgent first.
func (c priorityContainer) All() []Priority {
	return []Priority{c.Critical, c.High, c.Normal, c.Low, c.VeryLow}
}

const (
	priorityCritical Priority = 0
	priorityHigh     Priority = 1
	priorityNormal   Priority = 2
	priorityLow      Priority = 3
	priorityVeryLow  Priority = 4
)

var (
	strPriorityMap = map[Priority]string{
		priorityCritical: "critical",
		priorityHigh:     "high",
		priorityNormal:   "normal",
		priorityLow:      "low",
		priorityVeryLow:  "very-low",
	}

	typePriorityMap = map[string]Priority{
		"critical": priorityCritical,
		"high":     priorityHigh,
		"normal":   priorityNormal,
		"low":      priorityLow,
		"very-low": priorityVeryLow,
	}
)

func stringToPriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if v, ok := typePriorityMap[strings.ToLower(s)]; ok {
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid priority %q", s)
	}
	return Priority(n), nil
}

type priorityContainer struct {
	Critical Priority
	High     Priority
	Normal   Priority
	Low      Priority
	VeryLow  Priority
}
