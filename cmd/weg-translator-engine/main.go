package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/WeGentic/weg-translator-engine/internal/converter"
	"github.com/WeGentic/weg-translator-engine/internal/log"
	"github.com/WeGentic/weg-translator-engine/internal/project"
)

func main() {
	var (
		out        = flag.String("out", ".", "directory for generated artifacts")
		workspace  = flag.String("workspace", "", "project workspace root; its manifest supplies project defaults")
		name       = flag.String("project", "", "project name recorded in artifacts")
		user       = flag.String("user", "", "operator recorded in artifacts")
		prefix     = flag.String("prefix", "", "artifact filename prefix; defaults to the input stem")
		pretty     = flag.Bool("pretty", false, "indent generated JSON")
		keepInline = flag.Bool("keep-inline", false, "strip inline codes instead of substituting placeholders")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input.xlf>\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output(), "Converts an XLIFF 2.0 document into JLIFF and tag-map artifacts.")
		fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		log.SetLevel(log.LevelDebug)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := converter.NewOptions(flag.Arg(0), *out, *name, *user)
	opts.FilePrefix = *prefix
	opts.Pretty = *pretty
	opts.KeepInline = *keepInline

	if *workspace != "" {
		ws, err := project.OpenWorkspace(*workspace)
		if err != nil {
			log.Error("Failed to open workspace: %s", err)
			os.Exit(1)
		}
		if opts.ProjectName == "" {
			opts.ProjectName = ws.Manifest.Name
		}
		if opts.User == "" {
			opts.User = ws.Manifest.User
		}
		opts.ProjectID = ws.Manifest.ID
	}
	if opts.ProjectName == "" {
		opts.ProjectName = filepath.Base(flag.Arg(0))
	}

	artifacts, err := converter.WriteArtifacts(opts)
	if err != nil {
		log.Error("Conversion failed: %s", err)
		os.Exit(1)
	}
	for _, a := range artifacts {
		fmt.Println(a.JliffPath)
		fmt.Println(a.TagMapPath)
	}
}
