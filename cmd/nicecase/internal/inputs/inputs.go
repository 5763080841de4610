// Package inputs collects the texts a command works on from arguments, files and stdin.
package inputs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// MaxLineSize is the longest line readLines accepts from a file or stdin.
const MaxLineSize = 4 << 20

var ErrNoInput = errors.New("no input: pass text as arguments, use --file, or pipe lines to stdin")

// isTerminal may be replaced by tests.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type Source struct {
	Args  []string
	Files []string
	// Jobs bounds concurrent file reads, GOMAXPROCS if <= 0.
	Jobs  int
	Stdin io.Reader
}

// Read returns arguments first, then the lines of each file in the order given. Stdin is read only
// when neither arguments nor files were given, and only if it is not a terminal.
func (s Source) Read(ctx context.Context) ([]string, error) {
	texts := append([]string(nil), s.Args...)
	if len(s.Files) > 0 {
		lines, err := readFiles(ctx, s.Files, s.Jobs)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			texts = append(texts, l...)
		}
	}
	if len(s.Args) > 0 || len(s.Files) > 0 {
		return texts, nil
	}
	if s.Stdin == nil || isTerminal(s.Stdin) {
		return nil, ErrNoInput
	}
	lines, err := readLines(s.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func readFiles(ctx context.Context, files []string, jobs int) ([][]string, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	// Each goroutine writes only its own index.
	results := make([][]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines, err := readFile(path)
			if err != nil {
				return err
			}
			results[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
