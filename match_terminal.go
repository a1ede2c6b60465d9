package lessonkit

import "regexp"

func matchInteractiveTerminal(raw any, path string) (Payload, Issues) {
	m, iss := wantMap(raw, path)
	if iss != nil {
		return nil, iss
	}
	for k := range m {
		switch k {
		case "welcome", "prompt", "rules":
		default:
			iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
		}
	}
	welcome := ""
	if v, ok := m["welcome"]; ok {
		if welcome, ok = asString(v); !ok {
			iss = AppendIssues(iss, issueHint(path+"/welcome", CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
		}
	}
	prompt := termPromptField(m, path, &iss)
	rules := termRulesField(m, path, true, &iss)
	if iss != nil {
		return nil, iss
	}
	return InteractiveTerminal{Welcome: welcome, Prompt: prompt, Rules: rules}, nil
}

func matchTerminalDemo(raw any, path string) (Payload, Issues) {
	m, iss := wantMap(raw, path)
	if iss != nil {
		return nil, iss
	}
	for k := range m {
		switch k {
		case "prompt", "rules":
		default:
			iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
		}
	}
	prompt := termPromptField(m, path, &iss)
	rules := termRulesField(m, path, false, &iss)
	if iss != nil {
		return nil, iss
	}
	return TerminalDemo{Prompt: prompt, Rules: rules}, nil
}

func termPromptField(m map[string]any, path string, iss *Issues) string {
	prompt := defaultTermPrompt
	v, ok := m["prompt"]
	if !ok {
		return prompt
	}
	s, okS := asString(v)
	if !okS {
		*iss = AppendIssues(*iss, issueHint(path+"/prompt", CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
		return prompt
	}
	if s == "" {
		*iss = AppendIssues(*iss, issueHint(path+"/prompt", CodeConstraintViolation, "empty prompt", nil))
		return prompt
	}
	return s
}

// termRulesField validates the rules list shared by both terminal widgets.
// interactive restricts the level field to ok/err and requires the pattern to
// compile as a regular expression.
func termRulesField(m map[string]any, path string, interactive bool, iss *Issues) []TermRule {
	rulesPath := path + "/rules"
	v, ok := m["rules"]
	if !ok {
		*iss = AppendIssues(*iss, IssueAt(rulesPath, CodeRequired, nil))
		return nil
	}
	arr, ok := asSlice(v)
	if !ok {
		*iss = AppendIssues(*iss, issueHint(rulesPath, CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
		return nil
	}
	if len(arr) == 0 {
		*iss = AppendIssues(*iss, issueHint(rulesPath, CodeConstraintViolation, "rules must not be empty", nil))
		return nil
	}
	rules := make([]TermRule, 0, len(arr))
	for i, rv := range arr {
		rulePath := idxPath(rulesPath, i)
		tup, ok := asSlice(rv)
		if !ok {
			*iss = AppendIssues(*iss, issueHint(rulePath, CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			continue
		}
		if len(tup) != 3 {
			*iss = AppendIssues(*iss, IssueAt(rulePath, CodeArityMismatch, map[string]any{"want": 3, "got": len(tup)}))
			continue
		}
		pattern, okP := stringAt(tup, 0, rulePath, iss)
		level, okL := stringAt(tup, 1, rulePath, iss)
		output, okO := stringAt(tup, 2, rulePath, iss)
		if !okP || !okL || !okO {
			continue
		}
		if interactive {
			if _, err := regexp.Compile(pattern); err != nil {
				it := issueHint(idxPath(rulePath, 0), CodeConstraintViolation, "pattern does not compile", map[string]any{"got": pattern})
				it.Cause = err
				*iss = AppendIssues(*iss, it)
				continue
			}
			if level != "ok" && level != "err" {
				*iss = AppendIssues(*iss, issueHint(idxPath(rulePath, 1), CodeConstraintViolation,
					"level must be ok or err", map[string]any{"got": level}))
				continue
			}
		}
		rules = append(rules, TermRule{Pattern: pattern, Level: level, Output: output})
	}
	return rules
}
