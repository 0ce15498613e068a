// Package main provides the huff command line interface.
//
// huff compresses files with a static Huffman code whose tree travels in the
// output, so no side channel is needed to decompress. It can also print the
// symbol table of a file together with the codewords the tree assigns.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/marcosfnsc/impl-huffman/huffman"
	"github.com/marcosfnsc/impl-huffman/internal/digest"
	"github.com/marcosfnsc/impl-huffman/internal/fileio"
	"github.com/marcosfnsc/impl-huffman/internal/logger"
	"github.com/marcosfnsc/impl-huffman/report"
)

const extension = ".huff"

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "huff %s (Go)\n", huffman.Version)
}

func printHelp(w io.Writer, progName string) {
	fmt.Fprintf(w, "Static Huffman Compression (v%s)\n", huffman.Version)
	fmt.Fprintln(w, "=================================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reference:")
	fmt.Fprintln(w, "  D. A. Huffman. 1952. \"A Method for the Construction of")
	fmt.Fprintln(w, "  Minimum-Redundancy Codes,\" Proceedings of the IRE 40(9).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s -c <input> [-o <output>] [-f] [-v]\n", progName)
	fmt.Fprintf(w, "  %s -d <input.huff> [-o <output>] [-f] [-v]\n", progName)
	fmt.Fprintf(w, "  %s -s <input> [-json]\n", progName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -c <input>     Compress a file")
	fmt.Fprintln(w, "  -d <input>     Decompress a file")
	fmt.Fprintln(w, "  -s <input>     Print the symbol table of a file")
	fmt.Fprintln(w, "  -o <output>    Write to this path instead of the default")
	fmt.Fprintln(w, "  -f             Overwrite an existing output file")
	fmt.Fprintln(w, "  -json          Print the symbol table as JSON")
	fmt.Fprintln(w, "  -v             Verbose logging, verifies compressed output")
	fmt.Fprintln(w, "  -h             Show this help message")
	fmt.Fprintln(w, "  -version       Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintf(w, "  Compress:   <input>%s\n", extension)
	fmt.Fprintf(w, "  Decompress: <base> if input ends in %s, else <input>.out\n", extension)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s -c notes.txt              # writes notes.txt%s\n", progName, extension)
	fmt.Fprintf(w, "  %s -d notes.txt%s -f        # restores notes.txt\n", progName, extension)
	fmt.Fprintf(w, "  %s -s notes.txt -json        # symbol table\n", progName)
	fmt.Fprintln(w)
}

func makeDecompressFilename(input string) string {
	if base := strings.TrimSuffix(input, extension); base != input && base != "" {
		return base
	}
	return input + ".out"
}

type options struct {
	input     string
	output    string
	overwrite bool
	asJSON    bool
	verify    bool
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	log    logger.Logger
}

func (a *app) failf(format string, v ...any) int {
	fmt.Fprintf(a.stderr, "Error: "+format+"\n", v...)
	return 1
}

func (a *app) writeFailed(path string, err error) int {
	if errors.Is(err, fileio.ErrExists) {
		return a.failf("Output file exists: %s (use -f to overwrite)", path)
	}
	a.log.Debugf("%+v", err)
	return a.failf("Cannot write output file: %s", path)
}

func (a *app) doCompress(opt options) int {
	inputData, err := fileio.ReadAll(opt.input)
	if err != nil {
		a.log.Debugf("%+v", err)
		return a.failf("Cannot open input file: %s", opt.input)
	}

	outputData, stats, err := huffman.CompressWithStats(inputData)
	if err != nil {
		return a.failf("Compression failed: %v", err)
	}
	a.log.Debugf("tree: %d leaves, %d header bytes", stats.DistinctSymbols, stats.HeaderSize)

	sum := digest.Sum(inputData)
	if opt.verify {
		if err := verify(outputData, sum); err != nil {
			return a.failf("Compression failed: %v", err)
		}
		a.log.Debugf("round trip verified")
	}

	outputPath := opt.output
	if outputPath == "" {
		outputPath = opt.input + extension
	}
	if err := fileio.WriteAll(outputPath, outputData, opt.overwrite); err != nil {
		return a.writeFailed(outputPath, err)
	}

	fmt.Fprintf(a.stdout, "Input:       %s (%d bytes, %d distinct symbols)\n", opt.input, stats.InputSize, stats.DistinctSymbols)
	fmt.Fprintf(a.stdout, "Output:      %s (%d bytes)\n", outputPath, stats.OutputSize)
	fmt.Fprintf(a.stdout, "Ratio:       %.2fx\n", stats.Ratio())
	fmt.Fprintf(a.stdout, "Layout:      header=%d bytes, payload=%d bits, residual=%d\n",
		stats.HeaderSize, stats.PayloadBits, stats.Residual)
	fmt.Fprintf(a.stdout, "Digest:      %s\n", sum)

	return 0
}

func (a *app) doDecompress(opt options) int {
	inputData, err := fileio.ReadAll(opt.input)
	if err != nil {
		a.log.Debugf("%+v", err)
		return a.failf("Cannot open input file: %s", opt.input)
	}

	outputData, err := huffman.Decompress(inputData)
	if err != nil {
		return a.failf("Decompression failed: %v", err)
	}

	outputPath := opt.output
	if outputPath == "" {
		outputPath = makeDecompressFilename(opt.input)
	}
	if err := fileio.WriteAll(outputPath, outputData, opt.overwrite); err != nil {
		return a.writeFailed(outputPath, err)
	}

	expansion := 0.0
	if len(inputData) > 0 {
		expansion = float64(len(outputData)) / float64(len(inputData))
	}
	fmt.Fprintf(a.stdout, "Input:       %s (%d bytes)\n", opt.input, len(inputData))
	fmt.Fprintf(a.stdout, "Output:      %s (%d bytes)\n", outputPath, len(outputData))
	fmt.Fprintf(a.stdout, "Expansion:   %.2fx\n", expansion)
	fmt.Fprintf(a.stdout, "Digest:      %s\n", digest.Sum(outputData))

	return 0
}

func (a *app) doAnalyze(opt options) int {
	inputData, err := fileio.ReadAll(opt.input)
	if err != nil {
		a.log.Debugf("%+v", err)
		return a.failf("Cannot open input file: %s", opt.input)
	}

	r, err := report.Analyze(inputData)
	if err != nil {
		return a.failf("Analysis failed: %v", err)
	}

	if opt.asJSON {
		err = report.WriteJSON(a.stdout, r)
	} else {
		err = report.WriteTable(a.stdout, r)
	}
	if err != nil {
		return a.failf("Cannot write report: %v", err)
	}
	return 0
}

// verify decompresses out and checks it against the digest of the input.
func verify(out []byte, want string) error {
	restored, err := huffman.Decompress(out)
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	if got := digest.Sum(restored); got != want {
		return errors.Errorf("verify: digest mismatch, got %s want %s", got, want)
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	progName := "huff"
	if len(args) > 0 {
		progName = args[0]
		args = args[1:]
	}

	if len(args) == 0 {
		printHelp(stderr, progName)
		return 1
	}

	var (
		opt                     options
		compress, decompress    string
		analyze                 string
		verbose, help, showVers bool
	)

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&compress, "c", "", "")
	fs.StringVar(&decompress, "d", "", "")
	fs.StringVar(&analyze, "s", "", "")
	fs.StringVar(&opt.output, "o", "", "")
	fs.BoolVar(&opt.overwrite, "f", false, "")
	fs.BoolVar(&opt.asJSON, "json", false, "")
	fs.BoolVar(&verbose, "v", false, "")
	fs.BoolVar(&help, "h", false, "")
	fs.BoolVar(&showVers, "version", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stdout, progName)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s -h' for usage.\n", progName)
		return 1
	}

	if help {
		printHelp(stdout, progName)
		return 0
	}
	if showVers {
		printVersion(stdout)
		return 0
	}

	opt.verify = verbose
	a := &app{stdout: stdout, stderr: stderr, log: logger.New(stderr, verbose)}

	if fs.NArg() > 0 {
		return a.failf("Unexpected argument: %s", fs.Arg(0))
	}

	modes := 0
	for _, m := range []string{compress, decompress, analyze} {
		if m != "" {
			modes++
		}
	}
	if modes != 1 {
		return a.failf("Exactly one of -c, -d or -s is required")
	}
	if opt.output != "" && analyze != "" {
		return a.failf("-o cannot be used with -s")
	}

	switch {
	case compress != "":
		opt.input = compress
		return a.doCompress(opt)
	case decompress != "":
		opt.input = decompress
		return a.doDecompress(opt)
	default:
		opt.input = analyze
		return a.doAnalyze(opt)
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
