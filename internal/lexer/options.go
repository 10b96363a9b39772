package lexer

// Option configures a Lexer at construction time, following the same
// functional-options shape the teacher uses for WithPreserveComments /
// WithTracing.
type Option func(*Lexer)

// WithTrackTrivia makes the lexer emit Comment pseudo-tokens instead of
// silently discarding comments. Useful for formatters and documentation
// tooling that need to preserve them; off by default, matching spec's
// "comments... emit nothing" dispatch rule.
func WithTrackTrivia(track bool) Option {
	return func(l *Lexer) {
		l.trackTrivia = track
	}
}

// WithMaxContext sets the number of runes of surrounding context (on each
// side) included in an unrecognised-character diagnostic. Defaults to 5,
// matching spec §7's "≈5 characters either side".
func WithMaxContext(n int) Option {
	return func(l *Lexer) {
		if n >= 0 {
			l.contextWidth = n
		}
	}
}

// WithFilename attaches a filename to diagnostics raised by this lexer,
// for CLI runs that tokenize more than one file.
func WithFilename(name string) Option {
	return func(l *Lexer) {
		l.filename = name
	}
}
