// Package syntax tokenizes source text with chroma and exposes the result
// as a diffview.Highlighter, so RenderSideBySide can paint each line with
// real per-token colors instead of one flat style.
package syntax

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"splitdiff/internal/diffview"
)

// Highlighter picks a chroma lexer per file path (cached, since lexers.Match
// re-globs its registry on every call) and tokenizes each line against a
// fixed chroma style.
type Highlighter struct {
	style *chroma.Style
	base  diffview.Style

	mu     sync.Mutex
	lexers map[string]chroma.Lexer
}

// New builds a Highlighter using the named chroma style ("monokai",
// "github", ...), falling back to chroma's built-in default if the name is
// unknown. base is the style painted behind every token that chroma leaves
// uncolored (keeps diff background/bold intact for plain text).
func New(styleName string, base diffview.Style) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:  style,
		base:   base,
		lexers: make(map[string]chroma.Lexer),
	}
}

// Highlight implements diffview.Highlighter. On any tokenizer error, or when
// no lexer matches path, it returns the text as one segment in the base
// style rather than failing the render.
func (h *Highlighter) Highlight(path, text string) []diffview.StyleSegment {
	lexer := h.lexerFor(path)
	if lexer == nil {
		return []diffview.StyleSegment{{Style: h.base, Text: text}}
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return []diffview.StyleSegment{{Style: h.base, Text: text}}
	}

	var segs []diffview.StyleSegment
	for _, token := range iterator.Tokens() {
		if token.Value == "" {
			continue
		}
		segs = append(segs, diffview.StyleSegment{
			Style: h.styleFor(token.Type),
			Text:  token.Value,
		})
	}
	if len(segs) == 0 {
		return []diffview.StyleSegment{{Style: h.base, Text: text}}
	}
	return segs
}

func (h *Highlighter) lexerFor(path string) chroma.Lexer {
	h.mu.Lock()
	defer h.mu.Unlock()

	if l, ok := h.lexers[path]; ok {
		return l
	}

	l := lexers.Match(path)
	if l != nil {
		l = chroma.Coalesce(l)
	}
	h.lexers[path] = l
	return l
}

// styleFor translates one chroma token's style entry into a diffview.Style,
// layering onto base so a token chroma leaves partially unset (no bold, say)
// still inherits the caller's background.
func (h *Highlighter) styleFor(tt chroma.TokenType) diffview.Style {
	entry := h.style.Get(tt)
	st := h.base

	if entry.Colour.IsSet() {
		st.Foreground = lipgloss.Color(entry.Colour.String())
		st.HasFg = true
	}
	if entry.Bold == chroma.Yes {
		st.Bold = true
	}
	if entry.Italic == chroma.Yes {
		st.Italic = true
	}
	if entry.Underline == chroma.Yes {
		st.Underline = true
	}
	return st
}
