package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjection_ResolutionOrPlaceholder(t *testing.T) {
	assert.Equal(t, "Offered discount", Objection{Point: "Too expensive", Resolution: NewResolution("Offered discount")}.ResolutionOrPlaceholder())
	assert.Equal(t, "N/A", Objection{Point: "Too slow"}.ResolutionOrPlaceholder())
	assert.Equal(t, "N/A", Objection{Point: "Too slow", Resolution: NewResolution("")}.ResolutionOrPlaceholder())
	assert.Equal(t, "  ", Objection{Point: "Too slow", Resolution: NewResolution("  ")}.ResolutionOrPlaceholder())
}

func TestMeetingAnalysis_NormalizeEmitsEmptyArrays(t *testing.T) {
	var a MeetingAnalysis
	require.NoError(t, json.Unmarshal([]byte(`{"summary":"Short sync"}`), &a))
	assert.Nil(t, a.Objections)

	a.Normalize()

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"Short sync","objections":[],"action_items":[]}`, string(b))
}

func TestObjection_AbsentResolutionSerialisesAsNull(t *testing.T) {
	var o Objection
	require.NoError(t, json.Unmarshal([]byte(`{"point":"Timeline"}`), &o))
	assert.Nil(t, o.Resolution)

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"point":"Timeline","resolution":null}`, string(b))
}
