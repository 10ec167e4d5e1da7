package tools

import "encoding/json"

// Response reshaping. Each function is pure with respect to its output:
// the same decoded JSON always yields the same shape, and missing optional
// fields come through as absent rather than failing.

// clearAnalysisVariables empties every analysisVariables array in the
// payload. The ADaM product endpoint repeats the full variable set under
// every data structure, which swamps a language-model caller; the
// dedicated data-structure tool returns them on demand.
func clearAnalysisVariables(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			if k == "analysisVariables" {
				x[k] = []any{}
				continue
			}
			x[k] = clearAnalysisVariables(child)
		}
	case []any:
		for i, item := range x {
			x[i] = clearAnalysisVariables(item)
		}
	}
	return v
}

// trimAnalysisVariableLinks keeps only the self link inside each
// analysisVariables element, dropping the rest of the hypermedia
// navigation the upstream attaches to every variable.
func trimAnalysisVariableLinks(v any) any {
	return trimLinks(v, "")
}

func trimLinks(v any, parentKey string) any {
	switch x := v.(type) {
	case map[string]any:
		if parentKey == "analysisVariables" {
			if links, ok := x["_links"].(map[string]any); ok {
				if self, ok := links["self"]; ok {
					x["_links"] = map[string]any{"self": self}
				} else {
					x["_links"] = map[string]any{}
				}
			}
		}
		for k, child := range x {
			x[k] = trimLinks(child, k)
		}
	case []any:
		for i, item := range x {
			x[i] = trimLinks(item, parentKey)
		}
	}
	return v
}

// minimizeCTPackage reduces a full Controlled Terminology package, which
// can run to tens of megabytes, to the conceptId/submissionValue pairs of
// its codelists and terms. The codelist and term tools return full detail
// for individual entries.
func minimizeCTPackage(v any) any {
	minimized := []any{}

	root, _ := v.(map[string]any)
	codelists, _ := root["codelists"].([]any)
	for _, cl := range codelists {
		m, ok := cl.(map[string]any)
		if !ok {
			continue
		}

		terms := []any{}
		if rawTerms, ok := m["terms"].([]any); ok {
			for _, rawTerm := range rawTerms {
				tm, ok := rawTerm.(map[string]any)
				if !ok {
					continue
				}
				terms = append(terms, map[string]any{
					"conceptId":       tm["conceptId"],
					"submissionValue": tm["submissionValue"],
				})
			}
		}

		minimized = append(minimized, map[string]any{
			"conceptId":       m["conceptId"],
			"submissionValue": m["submissionValue"],
			"terms":           terms,
		})
	}

	return map[string]any{"codelists": minimized}
}

const truncationNotice = "...The data is too long, please shorten the request."

// marshalCapped compact-marshals a payload and caps it at max bytes,
// appending a notice the calling model can act on.
func marshalCapped(v any, max int) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if max > 0 && len(b) > max {
		return string(b[:max]) + truncationNotice, nil
	}
	return string(b), nil
}
