// Package rules models a style check as a named, typed unit of work over
// a line or a whole file, plus the registry that assembles rule sets.
package rules

import (
	"errors"
	"fmt"

	"github.com/crewcut/crewcut/src/cppfiles"
)

// Category groups rules for file-kind defaulting. C++ style rules apply
// only to C++ files unless the caller says otherwise.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryCppStyle Category = "cpp-style"
)

// ErrInputKind is returned when a rule is applied to an input of the
// wrong shape. This is a programming error in the caller, never a data
// error, so it is surfaced instead of being coerced or logged away.
var ErrInputKind = errors.New("rules: input kind does not match rule")

// CheckFunc is the signature of a rule's check logic. The Result carries
// the per-subject outcome; a non-nil error is a run-aborting condition
// (missing configuration, contract violation), not a check failure.
type CheckFunc func(Input) (Result, error)

// Spec describes a rule to be constructed through a Registry.
type Spec struct {
	Name        string
	Description string
	Category    Category
	Input       InputKind
	// Kinds restricts which file kinds the rule runs against. Nil means
	// "default": the C++ kinds for cpp-style rules, every kind otherwise.
	Kinds []cppfiles.Kind
	Check CheckFunc
}

// Rule is an immutable, named unit of validation logic.
type Rule struct {
	// ID is a category-scoped sequence identifier like "STYLE-1",
	// assigned by the Registry. Informational only: not unique across
	// registries and not used for lookup.
	ID          string
	Name        string
	Description string
	Category    Category
	Input       InputKind

	kinds map[cppfiles.Kind]bool
	check CheckFunc
}

// Registry owns the per-category sequence counters used to build rule
// identifiers. Each rule set gets its own Registry, so tests compose
// without resetting shared state.
type Registry struct {
	styleSeq   int
	generalSeq int
}

// NewRegistry returns a registry with zeroed counters.
func NewRegistry() *Registry {
	return &Registry{}
}

// New constructs a rule from spec, applying the kind-defaulting policy
// and assigning the next category-scoped identifier.
func (reg *Registry) New(spec Spec) (*Rule, error) {
	if spec.Check == nil {
		return nil, fmt.Errorf("rules: rule %q has no check function", spec.Name)
	}
	if spec.Category == "" {
		spec.Category = CategoryGeneral
	}
	if spec.Input == "" {
		spec.Input = InputNone
	}

	id, err := reg.nextID(spec.Category)
	if err != nil {
		return nil, err
	}

	kinds := spec.Kinds
	if kinds == nil {
		if spec.Category == CategoryCppStyle {
			kinds = cppfiles.CppKinds()
		} else {
			kinds = cppfiles.AllKinds()
		}
	}
	kindSet := make(map[cppfiles.Kind]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}

	return &Rule{
		ID:          id,
		Name:        spec.Name,
		Description: spec.Description,
		Category:    spec.Category,
		Input:       spec.Input,
		kinds:       kindSet,
		check:       spec.Check,
	}, nil
}

func (reg *Registry) nextID(cat Category) (string, error) {
	switch cat {
	case CategoryCppStyle:
		reg.styleSeq++
		return fmt.Sprintf("STYLE-%d", reg.styleSeq), nil
	case CategoryGeneral:
		reg.generalSeq++
		return fmt.Sprintf("GENERAL-%d", reg.generalSeq), nil
	default:
		return "", fmt.Errorf("rules: unknown rule category: %s", cat)
	}
}

// AppliesTo reports whether the rule runs against files of kind k.
func (r *Rule) AppliesTo(k cppfiles.Kind) bool {
	return r.kinds[k]
}

// Apply invokes the rule's check function and returns its result
// verbatim. An input of the wrong shape fails fast with ErrInputKind.
func (r *Rule) Apply(in Input) (Result, error) {
	if in == nil {
		return Result{}, fmt.Errorf("%w: rule %q given nil input", ErrInputKind, r.Name)
	}
	if in.inputKind() != r.Input {
		return Result{}, fmt.Errorf("%w: rule %q expects %s input, got %s",
			ErrInputKind, r.Name, r.Input, in.inputKind())
	}
	return r.check(in)
}
