package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "malformed_item":
			return "ウィジェット項目の形式が不正です"
		case "arity_mismatch":
			return "配列の要素数が不正です"
		case "invalid_type":
			return "型が不正です"
		case "constraint_violation":
			return "値が制約に違反しています"
		case "style_warning":
			return "作成ガイドラインに沿っていません"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "malformed_item":
			return "malformed widget item"
		case "arity_mismatch":
			return "wrong number of elements"
		case "invalid_type":
			return "invalid type"
		case "constraint_violation":
			return "value violates a constraint"
		case "style_warning":
			return "authoring guideline not followed"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
