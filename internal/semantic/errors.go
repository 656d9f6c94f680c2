package semantic

import (
	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer/token"
)

func tokenLen(tok token.Token) int {
	if tok.IsNull() {
		return 1
	}
	n := len([]rune(tok.Text))
	if n == 0 {
		return 1
	}
	return n
}

func spanForToken(f *ast.File, tok token.Token) diag.Span {
	return diag.Span{Source: f.Source, Line: tok.Line, Col: tok.Col, Len: tokenLen(tok)}
}

// spanForName anchors a diagnostic at name's final segment, so an
// unresolved or ambiguous dotted reference points at the specific
// member that failed rather than the start of the whole path.
func spanForName(f *ast.File, name ast.Name) diag.Span {
	return spanForToken(f, name.LastTok())
}

func emitError(sink *diag.Sink, f *ast.File, tok token.Token, format string, args ...any) {
	sink.Emit(diag.Error, spanForToken(f, tok), format, args...)
}

func emitWarn(sink *diag.Sink, f *ast.File, tok token.Token, format string, args ...any) {
	sink.Emit(diag.Warning, spanForToken(f, tok), format, args...)
}

func emitNameError(sink *diag.Sink, f *ast.File, name ast.Name, format string, args ...any) {
	sink.Emit(diag.Error, spanForName(f, name), format, args...)
}

func emitNameWarn(sink *diag.Sink, f *ast.File, name ast.Name, format string, args ...any) {
	sink.Emit(diag.Warning, spanForName(f, name), format, args...)
}

func emitFileError(sink *diag.Sink, f *ast.File, format string, args ...any) {
	sink.Emit(diag.Error, diag.Span{Source: f.Source, Line: 1, Col: 1, Len: 1}, format, args...)
}
