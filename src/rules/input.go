package rules

// InputKind declares what shape of input a rule's check function expects.
type InputKind string

const (
	InputNone InputKind = "none"
	InputLine InputKind = "line"
	InputFile InputKind = "file"
)

// Input is the closed set of values a rule can be applied to. Modelled
// as a sum type so a mismatched invocation is caught at the Apply
// boundary instead of deep inside a check function.
type Input interface {
	inputKind() InputKind
}

// NoInput is given to rules that take no subject.
type NoInput struct{}

func (NoInput) inputKind() InputKind { return InputNone }

// LineInput carries a single line of text for line rules.
type LineInput struct {
	Text string
}

func (LineInput) inputKind() InputKind { return InputLine }

// FileInput carries a whole file's content for file rules. Path is
// optional; rules that derive expected values from the file's location
// (header guards) need it, others ignore it.
type FileInput struct {
	Content string
	Path    string
}

func (FileInput) inputKind() InputKind { return InputFile }
