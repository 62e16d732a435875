// Package commentify reformats text for pasting into source code.
//
// Transform is a pure function: text and a Config in, text out. It supports
// four modes:
//   - ModeBlockComment reflows text into a docstring or /** */ block
//   - ModeLineComment reflows text into # or // line comments
//   - ModeQuote wraps each paragraph in double quotes
//   - ModeRemoveBreaks joins all lines into one
//
// Wrapping is greedy. A word joins the current line only while the line
// stays strictly narrower than the width budget, which is MaxWidth minus the
// indentation and, for JavaScript blocks, the " * " continuation marker.
// Line breaks in the source are kept as mandatory breaks.
//
// Example:
//
//	out, err := commentify.Transform(text, commentify.NewConfig(
//		commentify.WithStyle(commentify.StyleJS),
//		commentify.WithIndent(8),
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render wraps Transform for io.Reader and io.Writer and rejects binary
// input.
package commentify
