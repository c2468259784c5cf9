package style

import (
	"log/slog"

	"github.com/crewcut/crewcut/src/config"
	"github.com/crewcut/crewcut/src/license"
	"github.com/crewcut/crewcut/src/rules"
)

// DefaultKeywordSequences are the keyword phrases enforced by the
// keyword-order rule.
var DefaultKeywordSequences = []string{
	"static inline constexpr",
}

// BuildRules assembles the ordered list of active rules from the C++
// configuration. Style rules always precede the license-header rule so
// rule lists are reproducible across runs.
func BuildRules(cfg config.CppConfig, reg *rules.Registry, log *slog.Logger) ([]*rules.Rule, error) {
	var rs []*rules.Rule

	if cfg.StyleChecks {
		for _, seq := range DefaultKeywordSequences {
			rule, err := NewKeywordOrderRule(reg, seq)
			if err != nil {
				return nil, err
			}
			rs = append(rs, rule)
		}

		guard, err := NewHeaderGuardRule(reg, cfg.HeaderGuardsAccordingToFilepath)
		if err != nil {
			return nil, err
		}
		rs = append(rs, guard)
	}

	if cfg.LicenseHeaderCheck {
		if cfg.LicenseHeader != "" {
			rule, err := license.NewRule(reg, cfg.LicenseHeader)
			if err != nil {
				return nil, err
			}
			rs = append(rs, rule)
		} else {
			log.Warn("license header check is enabled but no license header file is configured, skipping rule")
		}
	}

	return rs, nil
}
