// Package main provides the CLI entry point for treediff, a diff/patch tool
// over JSON documents using RFC 6902 operations and RFC 6901 pointers.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/treediff/treediff"
	"github.com/treediff/treediff/fixture"
	"github.com/treediff/treediff/log"
)

func main() {
	var (
		compat bool
		logCfg = log.NewConfig()
	)

	rootCmd := &cobra.Command{
		Use:   "treediff",
		Short: "Diff and patch JSON documents",
		Long: `treediff computes and applies RFC 6902 operation lists over JSON documents,
with a non-standard "append" operation and an optional compatibility mode for
trees produced by naive XML converters, where scalars and one-element
sequences are interchangeable.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&compat, "xml-compat", false,
		"promote scalars to one-element sequences while patching, collapse them after")
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	var (
		pretty bool
		stat   bool
	)
	diffCmd := &cobra.Command{
		Use:   "diff <src.json> <dst.json>",
		Short: "Compute the operation list transforming one document into another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), args[0], args[1], pretty, stat)
		},
	}
	diffCmd.Flags().BoolVar(&pretty, "pretty", false, "render the operation list with ANSI colors")
	diffCmd.Flags().BoolVar(&stat, "stat", false, "print an operation count summary")

	patchCmd := &cobra.Command{
		Use:   "patch <doc.json> <patch.json>",
		Short: "Apply an operation list to a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(cmd.OutOrStdout(), args[0], args[1], compat)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <doc.json> <pointer>",
		Short: "Resolve an RFC 6901 pointer against a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args[0], args[1], compat)
		},
	}

	testCmd := &cobra.Command{
		Use:   "test <suite.json|suite.yaml>...",
		Short: "Run fixture suites and report pass/fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd.OutOrStdout(), args, compat)
		},
	}

	rootCmd.AddCommand(diffCmd, patchCmd, getCmd, testCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func readDocument(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func runDiff(w io.Writer, srcPath, dstPath string, pretty, stat bool) error {
	src, err := readDocument(srcPath)
	if err != nil {
		return err
	}
	dst, err := readDocument(dstPath)
	if err != nil {
		return err
	}

	patch := treediff.Diff(src, dst)

	if pretty {
		if err := treediff.FormatPretty(w, patch, true); err != nil {
			return err
		}
	} else if !stat {
		if err := writeJSON(w, patch); err != nil {
			return err
		}
	}
	if stat {
		fmt.Fprint(w, treediff.FormatStats(treediff.CalcStats(patch)))
	}
	return nil
}

func runPatch(w io.Writer, docPath, patchPath string, compat bool) error {
	doc, err := readDocument(docPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(patchPath)
	if err != nil {
		return fmt.Errorf("reading patch: %w", err)
	}
	patch, err := treediff.ParsePatch(data)
	if err != nil {
		return err
	}

	result, err := treediff.Apply(doc, patch, compat)
	if err != nil {
		return err
	}
	return writeJSON(w, result)
}

func runGet(w io.Writer, docPath, pointer string, compat bool) error {
	doc, err := readDocument(docPath)
	if err != nil {
		return err
	}
	value, err := treediff.Get(doc, pointer, compat)
	if err != nil {
		return err
	}
	return writeJSON(w, value)
}

func runTest(w io.Writer, paths []string, compat bool) error {
	var failed int
	for _, path := range paths {
		suite, err := fixture.LoadFile(path)
		if err != nil {
			return err
		}

		sum := fixture.RunSuite(suite, compat)
		for _, f := range sum.Failures() {
			slog.Error("fixture failed", "suite", path, "comment", f.Comment, "reason", f.Reason)
		}
		fmt.Fprintf(w, "%s: %d passed, %d failed, %d skipped\n", path, sum.Passed, sum.Failed, sum.Skipped)
		failed += sum.Failed
	}

	if failed > 0 {
		return fmt.Errorf("%d fixture(s) failed", failed)
	}
	return nil
}
