package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kakao-qa/kapi-contract-tests/config"
	"github.com/kakao-qa/kapi-contract-tests/framework"
	"github.com/kakao-qa/kapi-contract-tests/kapi"
	"github.com/kakao-qa/kapi-contract-tests/kapitests"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	configPath, err := params.resolveConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		return 1
	}
	mainDebugLogger.Printf("Loaded configuration from %s", configPath)

	baseURL := cfg.BaseURL()
	if params.baseURL != "" {
		baseURL = params.baseURL
	}
	client := kapi.NewClient(baseURL, params.timeout)
	fmt.Printf("Testing Kakao API at %s\n\n", client.BaseURL())
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	suiteParams := kapitests.SuiteParams{
		Config: cfg,
		Client: client,
	}

	results := kapitests.RunTestSuite(suiteParams, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		failedColor.Println("FAILED")
		if len(results.Failures) > 0 {
			fmt.Println()
			fmt.Println("To run only the failed tests again:")
			fmt.Printf("  %s\n", params.rerunCommand(configPath, results.Failures))
		}
		return 1
	}
	passedColor.Println("PASSED")
	return 0
}
