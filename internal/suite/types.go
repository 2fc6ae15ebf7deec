package suite

// Suite is a named list of expression cases.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case is a single expression and what it should produce. A case with
// valid: false must be rejected by the validator and carries no expect value.
// YAML's .inf, -.inf and .nan spell the non-finite results of division by
// zero.
type Case struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Expression  string   `yaml:"expression"`
	Valid       *bool    `yaml:"valid,omitempty"`
	Expect      *float32 `yaml:"expect,omitempty"`
}

// WantValid reports whether the case expects the expression to validate.
// Cases without an explicit valid flag are expected to be valid.
func (c Case) WantValid() bool {
	return c.Valid == nil || *c.Valid
}
