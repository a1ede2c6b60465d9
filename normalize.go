package lessonkit

// NormalizeItem resolves one raw item value into a normalized widget Item.
// This is the only place where shorthand-vs-full-form ambiguity is decided:
//
//   - object with exactly one field whose name is a registered kind: shorthand;
//     the field value is the raw payload
//   - object with a "type" field naming a registered kind: full form; for
//     object-keyed kinds the remaining fields are the payload, for positional
//     kinds the payload sits under "value" (or the kind's own name)
//   - anything else (zero fields, several shorthand keys, unknown key or type):
//     a single malformed_item diagnostic and no Item
//
// Matchers downstream only ever see an unambiguous (kind, raw payload) pair.
func NormalizeItem(raw any, path string) (Item, Issues) {
	var zero Item
	obj, ok := asMap(raw)
	if !ok {
		return zero, Issues{issueHint(path, CodeMalformedItem, "item must be an object", nil)}
	}
	if len(obj) == 0 {
		return zero, Issues{issueHint(path, CodeMalformedItem, "empty item object", nil)}
	}

	if len(obj) == 1 {
		for key, payload := range obj {
			if key == "type" {
				// full form with no payload fields at all
				return normalizeFullForm(obj, path)
			}
			desc, known := Lookup(key)
			if !known {
				return zero, Issues{issueHint(path, CodeMalformedItem, "unknown widget key: "+key, map[string]any{"key": key})}
			}
			return dispatch(desc, payload, path, path+"/"+key)
		}
	}

	// several fields: only the full-form escape hatch is allowed
	if _, hasType := obj["type"]; hasType {
		return normalizeFullForm(obj, path)
	}
	return zero, Issues{issueHint(path, CodeMalformedItem, "item must have exactly one widget key", map[string]any{"got": len(obj)})}
}

func normalizeFullForm(obj map[string]any, path string) (Item, Issues) {
	var zero Item
	typeName, ok := asString(obj["type"])
	if !ok {
		return zero, Issues{issueHint(path+"/type", CodeMalformedItem, "type must be a string", nil)}
	}
	desc, known := Lookup(typeName)
	if !known {
		return zero, Issues{issueHint(path+"/type", CodeMalformedItem, "unknown widget type: "+typeName, map[string]any{"type": typeName})}
	}

	if desc.ObjectKeyed {
		payload := make(map[string]any, len(obj)-1)
		for k, v := range obj {
			if k != "type" {
				payload[k] = v
			}
		}
		return dispatch(desc, payload, path, path)
	}

	// positional kinds carry their array under "value" or their own name
	if v, ok := obj["value"]; ok && len(obj) == 2 {
		return dispatch(desc, v, path, path+"/value")
	}
	if v, ok := obj[typeName]; ok && len(obj) == 2 {
		return dispatch(desc, v, path, path+"/"+typeName)
	}
	return zero, Issues{issueHint(path, CodeMalformedItem, "full-form "+typeName+" requires a single value field", nil)}
}

// dispatch runs the kind's matcher. itemPath locates the item for SourcePath;
// payloadPath is where the raw payload sits, for matcher diagnostics.
func dispatch(desc Descriptor, raw any, itemPath, payloadPath string) (Item, Issues) {
	payload, iss := desc.match(raw, payloadPath)
	if iss != nil {
		return Item{}, iss
	}
	return Item{Kind: desc.Kind, Payload: payload, SourcePath: itemPath}, nil
}
