package lsp

import (
	"testing"

	"github.com/dhamidi/combo/parse"
	"github.com/dhamidi/combo/roman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnose(t *testing.T) {
	total := 0
	p := roman.Parser(&total)

	text := "XVII\r\n\nMCMXCIV\nABC\n   \nIIV\n"
	diags := Diagnose(text, p, "combo")
	require.Len(t, diags, 2)

	assert.Equal(t, protocol.UInteger(3), diags[0].Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), diags[0].Range.Start.Character)
	assert.Equal(t, protocol.UInteger(3), diags[0].Range.End.Character)
	assert.Equal(t, "line does not match the grammar", diags[0].Message)
	require.NotNil(t, diags[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	require.NotNil(t, diags[0].Source)
	assert.Equal(t, "combo", *diags[0].Source)

	assert.Equal(t, protocol.UInteger(5), diags[1].Range.Start.Line)
}

func TestDiagnoseTrailingText(t *testing.T) {
	p := parse.Str("abc")
	require.Empty(t, Diagnose("abc\nabc", p, "combo"))

	diags := Diagnose("abcXYZ", p, "combo")
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.UInteger(3), diags[0].Range.Start.Character)
	assert.Equal(t, protocol.UInteger(6), diags[0].Range.End.Character)
	assert.Equal(t, "unexpected text after match", diags[0].Message)
}

func TestDiagnoseEmptyDocument(t *testing.T) {
	diags := Diagnose("", parse.Blank(), "combo")
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}
