package certificates

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	GET(path string, headers map[string]string) error
}

// RegisterSteps registers certificate registry step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &certificateSteps{tc: tc}

	ctx.Step(`^I verify certificate "([^"]*)"$`, steps.verify)
	ctx.Step(`^I submit certificates "([^"]*)" for bulk verification$`, steps.bulk)
	ctx.Step(`^I submit (\d+) certificates for bulk verification$`, steps.bulkGenerated)
}

type certificateSteps struct {
	tc TestContext
}

func (s *certificateSteps) verify(ctx context.Context, number string) error {
	return s.tc.GET("/verify/"+url.PathEscape(number), nil)
}

func (s *certificateSteps) bulk(ctx context.Context, numbers string) error {
	list := []string{}
	for _, n := range strings.Split(numbers, ",") {
		if n = strings.TrimSpace(n); n != "" {
			list = append(list, n)
		}
	}
	return s.tc.POST("/verify/bulk", list)
}

func (s *certificateSteps) bulkGenerated(ctx context.Context, n int) error {
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("CERT-BULK-%04d", i)
	}
	return s.tc.POST("/verify/bulk", list)
}
