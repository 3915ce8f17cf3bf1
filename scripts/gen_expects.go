// gen_expects generates free function forms of a test case builder's expect*
// and with* methods, so that common expectations can be shared between test
// cases through their apply method:
//
//	go run scripts/gen_expects.go -pkg clac -type clacTestCase -infix Clac -- in_test.go out_test.go
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	pkgName  = flag.String("pkg", "main", "package name of the generated file")
	typeName = flag.String("type", "", "test case builder type name")
	infix    = flag.String("infix", "", "inserted between expect/with and the rest of each method name")
)

func parseFlags() {
	flag.Parse()

	if *typeName == "" {
		log.Fatalf("must provide -type")
	}

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	method := regexp.MustCompile(`func \((\w+) ` + regexp.QuoteMeta(*typeName) + `\) (expect|with)(\w+)\((.+?)\) ` + regexp.QuoteMeta(*typeName) + ` {`)

	var buf bytes.Buffer
	buf.Grow(1024)
	fmt.Fprintf(&buf, "package %v\n\n", *pkgName)
	fmt.Fprintf(&buf, "// @generated from %v\n\n", in.Name())
	if len(flag.Args()) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run ../../scripts/gen_expects.go %v\n\n", strings.Join(os.Args[1:], " "))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := method.FindStringSubmatch(sc.Text()); len(match) > 0 {
			writeWrapper(&buf, match[1], match[2], match[3], match[4])
		}
		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeWrapper(buf *bytes.Buffer, recv, base, what, params string) {
	var names []string
	for _, part := range strings.Split(params, ",") {
		fields := strings.Fields(part)
		name := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			name += "..."
		}
		names = append(names, name)
	}

	fmt.Fprintf(buf, "func %v%v%v(%v) func(%v) %v {\n", base, *infix, what, params, *typeName, *typeName)
	fmt.Fprintf(buf, "\treturn func(%v %v) %v {\n", recv, *typeName, *typeName)
	fmt.Fprintf(buf, "\t\treturn %v.%v%v(%v)\n", recv, base, what, strings.Join(names, ", "))
	buf.WriteString("\t}\n}\n\n")
}
