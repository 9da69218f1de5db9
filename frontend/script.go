package frontend

import (
	"fmt"
	"os"
	"regexp"

	"github.com/speedata/wiredlist/backend/bag"
	"github.com/speedata/wiredlist/backend/node"
	"gopkg.in/yaml.v3"
)

// Script is a YAML description of a set of lists and the operations that are
// applied to them in order.
//
//	lists:
//	  numbers: [zero, one, two, three]
//	steps:
//	  - op: move
//	    list: numbers
//	    args: [0, 2, 2]
type Script struct {
	Lists map[string][]string `yaml:"lists"`
	Steps []Step              `yaml:"steps"`
}

// Step is a single operation of a script.
type Step struct {
	// Op is the name of the operation, for example "move" or "lchop".
	Op string `yaml:"op"`
	// List is the name of the list the operation works on.
	List string `yaml:"list"`
	// Args holds the indexes the operation needs.
	Args []int `yaml:"args"`
	// Values are inserted or set by the operation.
	Values []string `yaml:"values"`
	// Other is the name of the second list of two-list operations.
	Other string `yaml:"other"`
	// Match holds regular expressions. Each one is a predicate that is true
	// for the values it matches.
	Match []string `yaml:"match"`
	// Into names the list that receives the result. Operations with several
	// results store them as into.0, into.1 and so on. Result names must not
	// be taken yet.
	Into string `yaml:"into"`
	// Keep makes defragment keep the values that match no expression.
	Keep bool `yaml:"keep"`
}

// ParseScript decodes a script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for name := range s.Lists {
		if name == "" {
			return nil, fmt.Errorf("%w: list without a name", bag.ErrInvalidArgument)
		}
	}
	return &s, nil
}

// LoadScript reads and decodes the script in filename.
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// predicates compiles the match expressions of the step.
func (st Step) predicates() ([]node.Predicate[string], error) {
	if len(st.Match) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one match expression", bag.ErrInvalidArgument, st.Op)
	}
	preds := make([]node.Predicate[string], 0, len(st.Match))
	for _, m := range st.Match {
		re, err := regexp.Compile(m)
		if err != nil {
			return nil, err
		}
		preds = append(preds, re.MatchString)
	}
	return preds, nil
}

// predicate compiles the single match expression of the step.
func (st Step) predicate() (node.Predicate[string], error) {
	if len(st.Match) != 1 {
		return nil, fmt.Errorf("%w: %s needs exactly one match expression", bag.ErrInvalidArgument, st.Op)
	}
	preds, err := st.predicates()
	if err != nil {
		return nil, err
	}
	return preds[0], nil
}

// args makes sure the step has n arguments.
func (st Step) args(n int) error {
	if len(st.Args) != n {
		return fmt.Errorf("%w: %s needs %d arguments, got %d", bag.ErrInvalidArgument, st.Op, n, len(st.Args))
	}
	return nil
}

// into makes sure the step names a result list.
func (st Step) into() error {
	if st.Into == "" {
		return fmt.Errorf("%w: %s needs a result list (into)", bag.ErrInvalidArgument, st.Op)
	}
	return nil
}
