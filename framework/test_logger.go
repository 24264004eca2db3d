package framework

// TestLogger is notified as the run proceeds, so that progress can be shown while the suite is
// still running. Groups get TestStarted but never TestFinished; errors in a group's own code
// and in the run itself are still passed to TestError.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

// testLoggerOrNull returns logger, or a TestLogger that ignores every notification if logger
// is nil.
func testLoggerOrNull(logger TestLogger) TestLogger {
	if logger == nil {
		return nullTestLogger{}
	}
	return logger
}

type nullTestLogger struct{}

func (nullTestLogger) TestStarted(TestID)                        {}
func (nullTestLogger) TestError(TestID, error)                   {}
func (nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (nullTestLogger) TestSkipped(TestID, string)                {}
