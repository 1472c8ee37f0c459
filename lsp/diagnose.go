package lsp

import (
	"strings"

	"github.com/dhamidi/combo/parse"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnose checks every non-blank line of text against p and returns
// one diagnostic per line that p rejects or only partly consumes.
// Positions are byte offsets, which equal UTF-16 offsets for ASCII text.
func Diagnose(text string, p parse.Parser, source string) []protocol.Diagnostic {
	diags := make([]protocol.Diagnostic, 0)
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, ok := parse.Execute(p, line)
		switch {
		case !ok:
			diags = append(diags, newDiagnostic(source, i, 0, len(line), "line does not match the grammar"))
		case res.Pos < len(line):
			diags = append(diags, newDiagnostic(source, i, res.Pos, len(line), "unexpected text after match"))
		}
	}
	return diags
}

func newDiagnostic(source string, line, start, end int, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(start)},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(end)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
