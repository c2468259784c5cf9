package rules

// LineRules returns the rules that consume single lines.
func LineRules(rs []*Rule) []*Rule {
	return filter(rs, func(r *Rule) bool { return r.Input == InputLine })
}

// FileRules returns the rules that consume whole files.
func FileRules(rs []*Rule) []*Rule {
	return filter(rs, func(r *Rule) bool { return r.Input == InputFile })
}

// CppRules returns the rules in the C++ style category.
func CppRules(rs []*Rule) []*Rule {
	return filter(rs, func(r *Rule) bool { return r.Category == CategoryCppStyle })
}

func filter(rs []*Rule, keep func(*Rule) bool) []*Rule {
	var out []*Rule
	for _, r := range rs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
