package lessonkit

// matchMCQs accepts either the object form {"questions": [...]} or a bare
// questions array, so the shorthand {"mcqs": [...]} stays terse.
func matchMCQs(raw any, path string) (Payload, Issues) {
	var arr []any
	switch v := raw.(type) {
	case []any:
		arr = v
	case map[string]any:
		var iss Issues
		for k := range v {
			if k != "questions" {
				iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
			}
		}
		qv, ok := v["questions"]
		if !ok {
			iss = AppendIssues(iss, IssueAt(path+"/questions", CodeRequired, nil))
			return nil, iss
		}
		qarr, ok := asSlice(qv)
		if !ok {
			iss = AppendIssues(iss, issueHint(path+"/questions", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
		}
		if iss != nil {
			return nil, iss
		}
		arr = qarr
		path = path + "/questions"
	default:
		return nil, Issues{issueHint(path, CodeInvalidType, "expected object or array", nil)}
	}
	if len(arr) == 0 {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "questions must not be empty", nil)}
	}
	var iss Issues
	questions := make([]MCQ, 0, len(arr))
	for i, qv := range arr {
		q, qIss := matchQuestion(qv, idxPath(path, i))
		if qIss != nil {
			iss = AppendIssues(iss, qIss...)
			continue
		}
		questions = append(questions, q)
	}
	if iss != nil {
		return nil, iss
	}
	return MCQs{Questions: questions}, nil
}

func matchQuestion(raw any, path string) (MCQ, Issues) {
	var zero MCQ
	m, iss := wantMap(raw, path)
	if iss != nil {
		return zero, iss
	}
	for k := range m {
		switch k {
		case "q", "c", "a", "why":
		default:
			iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
		}
	}
	for _, req := range []string{"q", "c", "a"} {
		if _, ok := m[req]; !ok {
			iss = AppendIssues(iss, IssueAt(path+"/"+req, CodeRequired, nil))
		}
	}
	if iss != nil {
		return zero, iss
	}

	prompt, ok := asString(m["q"])
	if !ok {
		iss = AppendIssues(iss, issueHint(path+"/q", CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
	}
	var choices []string
	cArr, ok := asSlice(m["c"])
	if !ok {
		iss = AppendIssues(iss, issueHint(path+"/c", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
	} else {
		choices = make([]string, 0, len(cArr))
		for i := range cArr {
			if s, okC := stringAt(cArr, i, path+"/c", &iss); okC {
				choices = append(choices, s)
			}
		}
		if len(cArr) < minMCQChoices {
			iss = AppendIssues(iss, IssueAt(path+"/c", CodeConstraintViolation, map[string]any{"min": minMCQChoices, "got": len(cArr)}))
		}
	}
	answer, ok := asInt(m["a"])
	if !ok {
		iss = AppendIssues(iss, issueHint(path+"/a", CodeInvalidType, "expected integer", map[string]any{"expected": "integer"}))
	} else if cArr != nil && (answer < 0 || answer >= len(cArr)) {
		iss = AppendIssues(iss, IssueAt(path+"/a", CodeConstraintViolation, map[string]any{"min": 0, "max": len(cArr) - 1, "got": answer}))
	}
	why := ""
	if v, okW := m["why"]; okW {
		if why, okW = asString(v); !okW {
			iss = AppendIssues(iss, issueHint(path+"/why", CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
		}
	}
	if iss != nil {
		return zero, iss
	}
	return MCQ{Q: prompt, C: choices, A: answer, Why: why}, nil
}
