// Command orizon-tokenize tokenizes one or more source files and prints
// their token streams, in the style of the teacher project's orizon-fmt:
// flag-parsed, stdin-capable, with an optional watch mode.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/tokenize"
	"github.com/orizon-lang/tokenize/internal/dialect"
)

func main() {
	var (
		dialectName    string
		dialectVersion string
		jsonOutput     bool
		watch          bool
	)

	flag.StringVar(&dialectName, "dialect", "orizon", "token dialect to use (built-in: orizon, json)")
	flag.StringVar(&dialectVersion, "dialect-version", ">=0.0.0", "semver constraint selecting a dialect version")
	flag.BoolVar(&jsonOutput, "json", false, "print tokens as JSON Lines instead of a table")
	flag.BoolVar(&watch, "watch", false, "re-tokenize and reprint on every write to the file")
	flag.Parse()

	registry := dialect.Default()

	tokenSet, version, err := registry.Resolve(dialectName, dialectVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orizon-tokenize:", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "orizon-tokenize: using dialect %s v%s\n", dialectName, version)

	args := flag.Args()

	if watch {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "orizon-tokenize: -watch requires exactly one file path")
			os.Exit(1)
		}
		if err := watchFile(args[0], tokenSet, jsonOutput); err != nil {
			fmt.Fprintln(os.Stderr, "orizon-tokenize:", err)
			os.Exit(1)
		}
		return
	}

	exitCode := 0
	if len(args) == 0 {
		exitCode = tokenizeReader(os.Stdin, 0, tokenSet, jsonOutput)
	} else {
		for i, path := range args {
			if path == "-" {
				if code := tokenizeReader(os.Stdin, uint32(i), tokenSet, jsonOutput); code != 0 {
					exitCode = code
				}
				continue
			}
			contents, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "orizon-tokenize:", err)
				exitCode = 1
				continue
			}
			if code := tokenizeBytes(contents, uint32(i), tokenSet, jsonOutput); code != 0 {
				exitCode = code
			}
		}
	}
	os.Exit(exitCode)
}

func tokenizeReader(r io.Reader, resourceID uint32, tokenSet *tokenize.TokenSet, jsonOutput bool) int {
	contents, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orizon-tokenize:", err)
		return 1
	}
	return tokenizeBytes(contents, resourceID, tokenSet, jsonOutput)
}

func tokenizeBytes(contents []byte, resourceID uint32, tokenSet *tokenize.TokenSet, jsonOutput bool) int {
	res := tokenize.NewResource(contents, resourceID)
	tok, err := res.Tokenize(tokenSet)
	if err != nil {
		printSourceError(err)
		return 1
	}

	if jsonOutput {
		printTokensJSON(tok.GetTokens())
	} else {
		printTokensTable(tok.GetTokens())
	}
	return 0
}

func printSourceError(err error) {
	if se, ok := err.(*tokenize.SourceException); ok {
		loc := se.GetLocation()
		fmt.Fprintf(os.Stderr, "orizon-tokenize: %d:%d: %s\n", loc.StartLine+1, loc.StartColumn+1, se.Message)
		return
	}
	fmt.Fprintln(os.Stderr, "orizon-tokenize:", err)
}

func printTokensTable(tokens []*tokenize.Token) {
	for _, t := range tokens {
		loc := t.Location
		fmt.Printf("%-14s sub=%-3d [%d,%d) %d:%d-%d:%d %q\n",
			t.Type, t.SubType,
			loc.StartBufferPosition, loc.EndBufferPosition,
			loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn,
			t.ToString(),
		)
	}
}

type jsonToken struct {
	Type    string `json:"type"`
	SubType int32  `json:"subType"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Line    uint32 `json:"line"`
	Column  uint32 `json:"column"`
	Text    string `json:"text"`
}

func printTokensJSON(tokens []*tokenize.Token) {
	enc := json.NewEncoder(os.Stdout)
	for _, t := range tokens {
		_ = enc.Encode(jsonToken{
			Type:    t.Type.String(),
			SubType: t.SubType,
			Start:   t.Location.StartBufferPosition,
			End:     t.Location.EndBufferPosition,
			Line:    t.Location.StartLine,
			Column:  t.Location.StartColumn,
			Text:    t.ToString(),
		})
	}
}

// watchFile re-tokenizes path on every write event, printing a fresh full
// token stream each time. Each run is an independent, from-scratch
// tokenization — this is not incremental re-tokenization.
func watchFile(path string, tokenSet *tokenize.TokenSet, jsonOutput bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	runOnce := func() {
		contents, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "orizon-tokenize:", err)
			return
		}
		tokenizeBytes(contents, 0, tokenSet, jsonOutput)
	}

	runOnce()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "orizon-tokenize: watch error:", err)
		}
	}
}
