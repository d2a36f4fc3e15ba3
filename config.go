package tlqsched

import (
	"errors"
	"fmt"
	"strings"
)

// Config is a serialisable representation of the [Scheduler] configuration.
// It can be populated from JSON or YAML.
type Config struct {
	Quantum    int    `json:"quantum" yaml:"quantum"`
	IdlePolicy string `json:"idlePolicy,omitempty" yaml:"idlePolicy,omitempty"`
}

// DefaultConfig returns a Config with a quantum of 2 and the halting idle
// policy.
func DefaultConfig() *Config {
	return &Config{
		Quantum:    2,
		IdlePolicy: IdleHalt.String(),
	}
}

// Validate returns an aggregated error describing invalid settings, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Quantum <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidQuantum, c.Quantum))
	}
	if c.IdlePolicy != "" {
		if _, err := ParseIdlePolicy(c.IdlePolicy); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IdlePolicy decides what happens when both ready queues are empty.
type IdlePolicy int

const (
	// IdleHalt ends the simulation as soon as both ready queues are empty,
	// even if some processes have not yet arrived.
	IdleHalt IdlePolicy = iota

	// IdleAdvance moves the clock forward to the next pending arrival and
	// only ends the simulation once every process has arrived.
	IdleAdvance
)

var idlePolicyNames = map[IdlePolicy]string{
	IdleHalt:    "halt",
	IdleAdvance: "advance",
}

func (p IdlePolicy) String() string {
	if name, ok := idlePolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("IdlePolicy(%d)", int(p))
}

// ParseIdlePolicy returns the [IdlePolicy] with the given name.
func ParseIdlePolicy(s string) (IdlePolicy, error) {
	for p, name := range idlePolicyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return IdleHalt, fmt.Errorf("unknown idle policy %q", s)
}
