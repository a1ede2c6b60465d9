package lessonkit

func matchTable(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) == 0 {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "table must have at least one row", nil)}
	}
	rows := make([][]string, 0, len(arr))
	width := -1
	for i, rv := range arr {
		rowArr, ok := asSlice(rv)
		if !ok {
			iss = AppendIssues(iss, issueHint(idxPath(path, i), CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			continue
		}
		if len(rowArr) == 0 {
			iss = AppendIssues(iss, issueHint(idxPath(path, i), CodeConstraintViolation, "empty row", nil))
			continue
		}
		row := make([]string, 0, len(rowArr))
		rowOK := true
		for c := range rowArr {
			s, ok := stringAt(rowArr, c, idxPath(path, i), &iss)
			if !ok {
				rowOK = false
				continue
			}
			row = append(row, s)
		}
		if !rowOK {
			continue
		}
		// every row must be as wide as the header row
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			iss = AppendIssues(iss, IssueAt(idxPath(path, i), CodeConstraintViolation, map[string]any{"want": width, "got": len(row)}))
			continue
		}
		rows = append(rows, row)
	}
	if iss != nil {
		return nil, iss
	}
	return Table{Rows: rows}, nil
}

func matchCompare(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) == 0 {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "compare must have at least one row", nil)}
	}
	rows := make([]CompareRow, 0, len(arr))
	for i, rv := range arr {
		pair, ok := asSlice(rv)
		if !ok {
			iss = AppendIssues(iss, issueHint(idxPath(path, i), CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			continue
		}
		if len(pair) != 2 {
			iss = AppendIssues(iss, IssueAt(idxPath(path, i), CodeArityMismatch, map[string]any{"want": 2, "got": len(pair)}))
			continue
		}
		left, okL := stringAt(pair, 0, idxPath(path, i), &iss)
		right, okR := stringAt(pair, 1, idxPath(path, i), &iss)
		if okL && okR {
			rows = append(rows, CompareRow{Left: left, Right: right})
		}
	}
	if iss != nil {
		return nil, iss
	}
	return Compare{Rows: rows}, nil
}

func matchSwipeCards(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) == 0 {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "swipecards must have at least one card", nil)}
	}
	cards := make([]SwipeCard, 0, len(arr))
	for i, cv := range arr {
		cardPath := idxPath(path, i)
		tup, ok := asSlice(cv)
		if !ok {
			iss = AppendIssues(iss, issueHint(cardPath, CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			continue
		}
		if len(tup) != 3 {
			iss = AppendIssues(iss, IssueAt(cardPath, CodeArityMismatch, map[string]any{"want": 3, "got": len(tup)}))
			continue
		}
		text, okT := stringAt(tup, 0, cardPath, &iss)
		right, okR := asBool(tup[1])
		if !okR {
			iss = AppendIssues(iss, issueHint(idxPath(cardPath, 1), CodeInvalidType, "expected bool", map[string]any{"expected": "bool"}))
		}
		feedback, okF := stringAt(tup, 2, cardPath, &iss)
		if okT {
			ceilAt(text, maxSwipeText, idxPath(cardPath, 0), &iss)
		}
		if okF {
			ceilAt(feedback, maxSwipeFeed, idxPath(cardPath, 2), &iss)
		}
		if okT && okR && okF {
			cards = append(cards, SwipeCard{Text: text, Right: right, Feedback: feedback})
		}
	}
	if iss != nil {
		return nil, iss
	}
	return SwipeCards{Cards: cards}, nil
}
