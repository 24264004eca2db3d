package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/kakao-qa/kapi-contract-tests/framework"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestConsoleTestLogger(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Output: &buf, DebugOutputOnFailure: true}
	group := framework.TestID{Path: []string{"negative"}}
	id := framework.TestID{Path: []string{"negative", "invalid token"}}
	debug := framework.CapturedOutput{{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Message: "Sending GET /x"}}

	logger.TestStarted(group)
	logger.TestStarted(id)
	logger.TestError(id, errors.New("first\nsecond"))
	logger.TestFinished(id, true, debug)
	logger.TestSkipped(id, "excluded by filter parameters")

	assert.Equal(t, "\nNEGATIVE\n"+
		"[negative/invalid token]\n"+
		"  first\n"+
		"  second\n"+
		"  FAILED: negative/invalid token\n"+
		"    DEBUG [2024-01-02 03:04:05.000] Sending GET /x\n"+
		"  SKIPPED: negative/invalid token (excluded by filter parameters)\n", buf.String())
}

func TestConsoleTestLoggerHidesDebugOutputOnSuccessByDefault(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Output: &buf, DebugOutputOnFailure: true}
	id := framework.TestID{Path: []string{"positive", "send me commerce message"}}

	logger.TestFinished(id, false, framework.CapturedOutput{{Message: "hidden"}})
	assert.Empty(t, buf.String())

	logger.DebugOutputOnSuccess = true
	logger.TestFinished(id, false, framework.CapturedOutput{{Message: "shown"}})
	assert.Contains(t, buf.String(), "shown")
}
