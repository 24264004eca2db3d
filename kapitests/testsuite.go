package kapitests

import (
	"github.com/kakao-qa/kapi-contract-tests/framework"
)

func RunTestSuite(
	params SuiteParams,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{
		config: params.Config,
		client: params.Client,
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)

		t.Group("positive", DoPositiveTests)
		t.Group("negative", DoNegativeTests)
	})
}
