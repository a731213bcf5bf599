package transform

import (
	"regexp"
	"strings"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
)

// The built-in minifiers are deliberately simple: comment stripping and
// whitespace collapsing. Real minification algorithms plug in through the
// registry like any other transform.

var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`(?m)^\s*//[^\n]*$`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
	cssSeparatorPattern = regexp.MustCompile(`\s*([{};:,>])\s*`)
	blankLinesPattern   = regexp.MustCompile(`\n{2,}`)
	trailingPattern     = regexp.MustCompile(`(?m)[ \t]+$`)
)

// MinifyCSS strips comments and collapses whitespace in a stylesheet.
func MinifyCSS(res domain.ResolvedResource) (string, []domain.Dependency, error) {
	out := blockCommentPattern.ReplaceAllString(res.Content, "")
	out = whitespacePattern.ReplaceAllString(out, " ")
	out = cssSeparatorPattern.ReplaceAllString(out, "$1")
	out = strings.ReplaceAll(out, ";}", "}")
	return strings.TrimSpace(out), nil, nil
}

// MinifyJS strips full-line comments, block comments and blank lines from a
// script. It never collapses within-line whitespace: without a real parser
// that is the conservative boundary.
func MinifyJS(res domain.ResolvedResource) (string, []domain.Dependency, error) {
	out := blockCommentPattern.ReplaceAllString(res.Content, "")
	out = lineCommentPattern.ReplaceAllString(out, "")
	out = trailingPattern.ReplaceAllString(out, "")
	out = blankLinesPattern.ReplaceAllString(out, "\n")
	return strings.TrimSpace(out), nil, nil
}
