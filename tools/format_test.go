package tools

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func Test_ClearAnalysisVariables(t *testing.T) {
	v := decode(t, `{
		"name": "adamig-1-3",
		"dataStructures": [
			{"name": "ADSL", "analysisVariables": [{"name": "STUDYID"}, {"name": "USUBJID"}]},
			{"name": "BDS", "analysisVariables": [{"name": "PARAMCD"}]}
		]
	}`)

	got := clearAnalysisVariables(v).(map[string]any)

	assert.Equal(t, "adamig-1-3", got["name"], "unrelated fields untouched")
	for _, ds := range got["dataStructures"].([]any) {
		assert.Empty(t, ds.(map[string]any)["analysisVariables"])
	}
}

func Test_TrimAnalysisVariableLinks(t *testing.T) {
	v := decode(t, `{
		"_links": {"self": {"href": "/mdr/adam/adamig-1-3"}, "parent": {"href": "/mdr/adam"}},
		"analysisVariables": [
			{"name": "STUDYID", "_links": {"self": {"href": "/v/STUDYID"}, "parentProduct": {"href": "/p"}, "rootItem": {"href": "/r"}}},
			{"name": "NOLINKS"}
		]
	}`)

	got := trimAnalysisVariableLinks(v).(map[string]any)

	// Links outside analysisVariables keep their full shape.
	rootLinks := got["_links"].(map[string]any)
	assert.Contains(t, rootLinks, "parent")

	vars := got["analysisVariables"].([]any)
	trimmed := vars[0].(map[string]any)["_links"].(map[string]any)
	assert.Len(t, trimmed, 1)
	assert.Contains(t, trimmed, "self")

	// A variable without _links passes through unchanged.
	assert.NotContains(t, vars[1].(map[string]any), "_links")
}

func Test_TrimAnalysisVariableLinks_NoSelf(t *testing.T) {
	v := decode(t, `{"analysisVariables": [{"_links": {"parentProduct": {"href": "/p"}}}]}`)

	got := trimAnalysisVariableLinks(v).(map[string]any)
	links := got["analysisVariables"].([]any)[0].(map[string]any)["_links"].(map[string]any)
	assert.Empty(t, links)
}

func Test_MinimizeCTPackage(t *testing.T) {
	v := decode(t, `{
		"name": "SDTM CT 2025-03-28",
		"_links": {"self": {"href": "/mdr/ct/packages/sdtmct-2025-03-28"}},
		"codelists": [
			{
				"conceptId": "C66731",
				"submissionValue": "SEX",
				"definition": "Sex of the subject.",
				"terms": [
					{"conceptId": "C20197", "submissionValue": "M", "definition": "Male."},
					{"conceptId": "C16576", "submissionValue": "F", "definition": "Female."}
				]
			},
			{"conceptId": "C66781", "submissionValue": "AGEU"}
		]
	}`)

	got := minimizeCTPackage(v).(map[string]any)

	require.Len(t, got, 1, "only codelists survive")
	codelists := got["codelists"].([]any)
	require.Len(t, codelists, 2)

	sex := codelists[0].(map[string]any)
	assert.Equal(t, "C66731", sex["conceptId"])
	assert.Equal(t, "SEX", sex["submissionValue"])
	assert.NotContains(t, sex, "definition")

	terms := sex["terms"].([]any)
	require.Len(t, terms, 2)
	assert.Equal(t, map[string]any{"conceptId": "C20197", "submissionValue": "M"}, terms[0])

	// A codelist without terms yields an empty terms array, not an error.
	ageu := codelists[1].(map[string]any)
	assert.Empty(t, ageu["terms"])
}

func Test_MinimizeCTPackage_MissingCodelists(t *testing.T) {
	got := minimizeCTPackage(decode(t, `{"name": "empty"}`)).(map[string]any)
	assert.Empty(t, got["codelists"])

	got = minimizeCTPackage(decode(t, `[1, 2, 3]`)).(map[string]any)
	assert.Empty(t, got["codelists"])
}

func Test_Reshapes_Idempotent(t *testing.T) {
	raw := `{
		"analysisVariables": [{"_links": {"self": {"href": "/v"}, "other": {"href": "/o"}}}],
		"dataStructures": [{"analysisVariables": [{"name": "AVAL"}]}]
	}`

	once := trimAnalysisVariableLinks(decode(t, raw))
	twice := trimAnalysisVariableLinks(trimAnalysisVariableLinks(decode(t, raw)))
	assert.Equal(t, once, twice)

	once = clearAnalysisVariables(decode(t, raw))
	twice = clearAnalysisVariables(clearAnalysisVariables(decode(t, raw)))
	assert.Equal(t, once, twice)
}

func Test_MarshalCapped(t *testing.T) {
	small, err := marshalCapped(map[string]any{"a": 1}, 1000)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, small)

	big, err := marshalCapped(strings.Repeat("x", 500), 100)
	require.NoError(t, err)
	assert.Len(t, big, 100+len(truncationNotice))
	assert.True(t, strings.HasSuffix(big, truncationNotice))
}
