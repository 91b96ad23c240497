// Command smlex is a thin driver over the sml lexer/parser core: read a
// file (or stdin), lex and parse it, and report the result. It exists to
// exercise the library's ambient stack outside of tests — the library
// itself stays file/CLI-free per spec §6.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lexecon/smlex"
	"github.com/lexecon/smlex/parse"
)

var (
	tokensYAML = pflag.Bool("tokens-yaml", false, "dump the lexed token stream as YAML instead of parsing")
	dumpAST    = pflag.Bool("dump-ast", false, "pretty-print the parsed AST instead of the diagnostic line")
	verbose    = pflag.BoolP("verbose", "v", false, "log the completion diagnostic via logrus instead of stdout")
)

type tokenRecord struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

func main() {
	pflag.Parse()

	src, err := readSource()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *tokensYAML {
		if err := dumpTokensYAML(src); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	var log parse.Logger
	switch {
	case *verbose:
		log = logrus.StandardLogger()
	case *dumpAST:
		// the AST takes the diagnostic line's place on stdout
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		log = quiet
	}

	ast, err := parse.ParseWithLogger(src, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dumpAST {
		repr.Println(ast)
	}
}

func readSource() (sml.Source, error) {
	args := pflag.Args()
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return sml.Source{}, fmt.Errorf("reading stdin: %w", err)
		}
		return sml.NewSource(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return sml.Source{}, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return sml.NewSource(b), nil
}

func dumpTokensYAML(src sml.Source) error {
	res := sml.Tokens(src)
	records := make([]tokenRecord, len(res.Tokens))
	for i, t := range res.Tokens {
		records[i] = tokenRecord{Kind: t.Kind.String(), Text: t.Text()}
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(records); err != nil {
		return err
	}
	if !res.OK() {
		return sml.WrapLexFailure(res)
	}
	return nil
}
