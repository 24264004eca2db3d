package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kakao-qa/kapi-contract-tests/config"
	"github.com/kakao-qa/kapi-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	programName string
	configPath  string
	baseURL     string
	filters     framework.RegexFilters
	timeout     time.Duration
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string) bool {
	c.programName = filepath.Base(args[0])

	fs := flag.NewFlagSet(c.programName, flag.ContinueOnError)
	fs.StringVar(&c.configPath, "config", "",
		"configuration file (default: config.json beside the executable or its parent, or in the working directory)")
	fs.StringVar(&c.baseURL, "url", "", "Kakao API base URL (default: kakao_api.base_url from the configuration, or "+config.DefaultBaseURL+")")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.DurationVar(&c.timeout, "timeout", 0, "HTTP request timeout (0 means no timeout)")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

// resolveConfigPath returns the -config parameter if it was given. Otherwise it looks for the
// configuration relative to the executable, as the suite's own location, and then in the
// working directory.
func (c *commandParams) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	if exe, err := os.Executable(); err == nil {
		if path, err := config.Locate(filepath.Dir(exe)); err == nil {
			return path, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.Locate(wd)
}

// rerunCommand returns a shell command line that runs only the given tests, with the same
// configuration as this run.
func (c *commandParams) rerunCommand(configPath string, tests []framework.TestResult) string {
	var b commandBuilder
	b.add(c.programName, "-config", configPath)
	if c.baseURL != "" {
		b.add("-url", c.baseURL)
	}
	if c.timeout != 0 {
		b.add("-timeout", c.timeout.String())
	}
	for _, t := range tests {
		b.add("-run", framework.ExactTestPattern(t.TestID))
	}
	if c.debug {
		b.add("-debug")
	}
	if c.debugAll {
		b.add("-debug-all")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
