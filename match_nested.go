package lessonkit

// Recursive widget kinds. Depth limits are enforced with an explicit level
// counter threaded through the recursion, independent of host stack limits.
// The root item list counts as level 1.

func matchChecklist(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) == 0 {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "checklist must have at least one entry", nil)}
	}
	items, iss := checklistNodes(arr, path, 1)
	if iss != nil {
		return nil, iss
	}
	return Checklist{Items: items}, nil
}

func checklistNodes(arr []any, path string, level int) ([]ChecklistNode, Issues) {
	var iss Issues
	nodes := make([]ChecklistNode, 0, len(arr))
	for i, nv := range arr {
		nodePath := idxPath(path, i)
		switch n := nv.(type) {
		case string:
			nodes = append(nodes, ChecklistNode{Title: n})
		case []any:
			if len(n) != 2 {
				iss = AppendIssues(iss, IssueAt(nodePath, CodeArityMismatch, map[string]any{"want": 2, "got": len(n)}))
				continue
			}
			title, okT := stringAt(n, 0, nodePath, &iss)
			children, okC := asSlice(n[1])
			if !okC {
				iss = AppendIssues(iss, issueHint(idxPath(nodePath, 1), CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			}
			if !okT || !okC {
				continue
			}
			if len(children) == 0 {
				iss = AppendIssues(iss, issueHint(idxPath(nodePath, 1), CodeConstraintViolation, "empty group", nil))
				continue
			}
			if level+1 > maxChecklistDep {
				iss = AppendIssues(iss, issueHint(nodePath, CodeConstraintViolation,
					"checklist nesting exceeds limit", map[string]any{"max": maxChecklistDep}))
				continue
			}
			sub, subIss := checklistNodes(children, idxPath(nodePath, 1), level+1)
			if subIss != nil {
				iss = AppendIssues(iss, subIss...)
				continue
			}
			nodes = append(nodes, ChecklistNode{Title: title, Children: sub})
		default:
			iss = AppendIssues(iss, issueHint(nodePath, CodeInvalidType, "expected string or [title, children] pair", nil))
		}
	}
	if iss != nil {
		return nil, iss
	}
	return nodes, nil
}

func matchStepFlow(raw any, path string) (Payload, Issues) {
	arr, iss := wantSlice(raw, path)
	if iss != nil {
		return nil, iss
	}
	if len(arr) == 0 {
		return nil, Issues{issueHint(path, CodeConstraintViolation, "stepFlow must have at least one step", nil)}
	}
	steps, iss := stepNodes(arr, path, 1)
	if iss != nil {
		return nil, iss
	}
	return StepFlow{Steps: steps}, nil
}

func stepNodes(arr []any, path string, level int) ([]StepNode, Issues) {
	var iss Issues
	nodes := make([]StepNode, 0, len(arr))
	for i, nv := range arr {
		nodePath := idxPath(path, i)
		switch n := nv.(type) {
		case string:
			nodes = append(nodes, StepNode{Label: n})
		case []any:
			if len(n) != 2 {
				iss = AppendIssues(iss, IssueAt(nodePath, CodeArityMismatch, map[string]any{"want": 2, "got": len(n)}))
				continue
			}
			label, okL := stringAt(n, 0, nodePath, &iss)
			sub, okS := asSlice(n[1])
			if !okS {
				iss = AppendIssues(iss, issueHint(idxPath(nodePath, 1), CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			}
			if !okL || !okS {
				continue
			}
			if len(sub) == 0 {
				iss = AppendIssues(iss, issueHint(idxPath(nodePath, 1), CodeConstraintViolation, "empty branch", nil))
				continue
			}
			if level+1 > maxStepFlowDep {
				iss = AppendIssues(iss, issueHint(nodePath, CodeConstraintViolation,
					"stepFlow branching exceeds limit", map[string]any{"max": maxStepFlowDep}))
				continue
			}
			children, subIss := stepNodes(sub, idxPath(nodePath, 1), level+1)
			if subIss != nil {
				iss = AppendIssues(iss, subIss...)
				continue
			}
			nodes = append(nodes, StepNode{Label: label, Steps: children})
		default:
			iss = AppendIssues(iss, issueHint(nodePath, CodeInvalidType, "expected string or [label, substeps] pair", nil))
		}
	}
	if iss != nil {
		return nil, iss
	}
	return nodes, nil
}

func matchTreeView(raw any, path string) (Payload, Issues) {
	m, iss := wantMap(raw, path)
	if iss != nil {
		return nil, iss
	}
	for k := range m {
		switch k {
		case "root", "nodes":
		default:
			iss = AppendIssues(iss, issueHint(path+"/"+k, CodeUnknownKey, k, nil))
		}
	}
	rootV, okRoot := m["root"]
	if !okRoot {
		iss = AppendIssues(iss, IssueAt(path+"/root", CodeRequired, nil))
	}
	nodesV, okNodes := m["nodes"]
	if !okNodes {
		iss = AppendIssues(iss, IssueAt(path+"/nodes", CodeRequired, nil))
	}
	if iss != nil {
		return nil, iss
	}
	root, ok := asString(rootV)
	if !ok {
		iss = AppendIssues(iss, issueHint(path+"/root", CodeInvalidType, "expected string", map[string]any{"expected": "string"}))
	} else if root == "" {
		iss = AppendIssues(iss, issueHint(path+"/root", CodeConstraintViolation, "empty root name", nil))
	}
	arr, ok := asSlice(nodesV)
	if !ok {
		iss = AppendIssues(iss, issueHint(path+"/nodes", CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
	}
	if iss != nil {
		return nil, iss
	}
	nodes, iss := treeNodes(arr, path+"/nodes")
	if iss != nil {
		return nil, iss
	}
	return TreeView{Root: root, Nodes: nodes}, nil
}

func treeNodes(arr []any, path string) ([]TreeNode, Issues) {
	var iss Issues
	nodes := make([]TreeNode, 0, len(arr))
	for i, nv := range arr {
		nodePath := idxPath(path, i)
		switch n := nv.(type) {
		case string:
			nodes = append(nodes, TreeNode{Name: n})
		case []any:
			if len(n) != 2 {
				iss = AppendIssues(iss, IssueAt(nodePath, CodeArityMismatch, map[string]any{"want": 2, "got": len(n)}))
				continue
			}
			name, okN := stringAt(n, 0, nodePath, &iss)
			children, okC := asSlice(n[1])
			if !okC {
				iss = AppendIssues(iss, issueHint(idxPath(nodePath, 1), CodeInvalidType, "expected array", map[string]any{"expected": "array"}))
			}
			if !okN || !okC {
				continue
			}
			sub, subIss := treeNodes(children, idxPath(nodePath, 1))
			if subIss != nil {
				iss = AppendIssues(iss, subIss...)
				continue
			}
			nodes = append(nodes, TreeNode{Name: name, Children: sub})
		default:
			iss = AppendIssues(iss, issueHint(nodePath, CodeInvalidType, "expected string or [name, children] pair", nil))
		}
	}
	if iss != nil {
		return nil, iss
	}
	return nodes, nil
}
