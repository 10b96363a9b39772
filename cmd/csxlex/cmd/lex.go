package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/cslang/csxlex/internal/lexer"
	"github.com/cslang/csxlex/internal/token"
)

var (
	evalExpr string
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file-or-dir]",
	Short: "Tokenize a source file, a directory of *.cs files, or inline text",
	Long: `Tokenize (lex) csx source and print the resulting tokens.

Examples:
  # Tokenize a single file
  csxlex lex script.cs

  # Tokenize an inline expression
  csxlex lex -e "int x = 1;"

  # Tokenize every *.cs file under a directory
  csxlex lex ./src

  # Show token kinds and positions
  csxlex lex --show-type --show-pos script.cs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline text instead of reading from a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
}

func runLex(cmd *cobra.Command, args []string) error {
	if evalExpr != "" {
		return lexOne("<eval>", evalExpr)
	}

	if len(args) == 0 {
		return fmt.Errorf("either provide a file or directory path, or use -e for inline text")
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		return lexOne(path, string(content))
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".cs") {
			return nil
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", p, err)
		}
		return lexOne(p, string(content))
	})
}

func lexOne(filename, src string) error {
	verbose, _ := lexCmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(src))
		fmt.Println("---")
	}

	toks, err := lexer.New(src, lexer.WithFilename(filename)).Lex()
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	for _, tok := range toks {
		printToken(tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(toks))
	}

	return nil
}

// kindColumnWidth is how many display columns printToken reserves for the
// kind name column when --show-type is set. displayWidth accounts for
// East-Asian/ambiguous-width runes (via x/text/width) so the column stays
// aligned even for kind names or lexemes containing wide characters.
const kindColumnWidth = 28

func printToken(tok token.Token) {
	var out strings.Builder

	if showType {
		name := tok.Kind.String()
		out.WriteString("[")
		out.WriteString(name)
		out.WriteString(strings.Repeat(" ", max(0, kindColumnWidth-displayWidth(name))))
		out.WriteString("]")
	}

	switch {
	case tok.Kind == token.EndOfFile:
		out.WriteString(" EndOfFile")
	case tok.Lexeme == "":
		out.WriteString(" " + tok.Kind.String())
	default:
		fmt.Fprintf(&out, " %q", tok.Lexeme)
	}

	if tok.Value != nil {
		fmt.Fprintf(&out, " = %s (%s)", tok.Value.String(), tok.Value.Kind.String())
	}

	if showPos {
		fmt.Fprintf(&out, " @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(out.String())
}

// displayWidth sums each rune's terminal display width (1 for narrow/neutral,
// 2 for wide/fullwidth), so the kind-name column stays aligned regardless of
// whether a token's rendering contains East-Asian-width characters.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
