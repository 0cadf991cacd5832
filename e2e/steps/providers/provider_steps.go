package providers

import (
	"context"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
}

// RegisterSteps registers provider registry step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &providerSteps{tc: tc}

	ctx.Step(`^I verify provider type "([^"]*)" with identifier "([^"]*)"$`, steps.verify)
	ctx.Step(`^I verify provider type "([^"]*)" with identifier "([^"]*)" in country "([^"]*)"$`, steps.verifyInCountry)
}

type providerSteps struct {
	tc TestContext
}

func (s *providerSteps) verify(ctx context.Context, providerType, identifier string) error {
	return s.tc.POST("/verify", map[string]string{
		"provider_type":       providerType,
		"provider_identifier": identifier,
	})
}

func (s *providerSteps) verifyInCountry(ctx context.Context, providerType, identifier, country string) error {
	return s.tc.POST("/verify", map[string]string{
		"provider_type":       providerType,
		"provider_identifier": identifier,
		"country":             country,
	})
}
