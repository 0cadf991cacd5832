package auth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	POSTForm(path string, form url.Values) error
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (interface{}, error)
	GetLastResponseStatus() int
	GetAccessToken() string
	SetAccessToken(token string)
}

// RegisterSteps registers authentication-related step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &authSteps{tc: tc}

	ctx.Step(`^I sign up as "([^"]*)" with phone "([^"]*)" and password "([^"]*)"$`, steps.signUp)
	ctx.Step(`^a user "([^"]*)" with phone "([^"]*)" and password "([^"]*)" exists$`, steps.userExists)
	ctx.Step(`^I request a token with phone "([^"]*)" and password "([^"]*)"$`, steps.requestToken)
	ctx.Step(`^I save the access token$`, steps.saveAccessToken)
	ctx.Step(`^I request my profile with the access token$`, steps.requestProfile)
	ctx.Step(`^I request my profile with token "([^"]*)"$`, steps.requestProfileWithToken)
}

type authSteps struct {
	tc TestContext
}

func (s *authSteps) signUp(ctx context.Context, name, phone, password string) error {
	return s.tc.POST("/signup", map[string]string{
		"name":     name,
		"phone":    phone,
		"password": password,
	})
}

func (s *authSteps) userExists(ctx context.Context, name, phone, password string) error {
	if err := s.signUp(ctx, name, phone, password); err != nil {
		return err
	}
	if status := s.tc.GetLastResponseStatus(); status != 200 {
		return fmt.Errorf("signup for %s failed with status %d", phone, status)
	}
	return nil
}

func (s *authSteps) requestToken(ctx context.Context, phone, password string) error {
	return s.tc.POSTForm("/token", url.Values{
		"username": {phone},
		"password": {password},
	})
}

func (s *authSteps) saveAccessToken(ctx context.Context) error {
	token, err := s.tc.GetResponseField("access_token")
	if err != nil {
		return err
	}
	str, ok := token.(string)
	if !ok || str == "" {
		return fmt.Errorf("access_token is not a non-empty string: %v", token)
	}
	s.tc.SetAccessToken(str)
	return nil
}

func (s *authSteps) requestProfile(ctx context.Context) error {
	return s.requestProfileWithToken(ctx, s.tc.GetAccessToken())
}

func (s *authSteps) requestProfileWithToken(ctx context.Context, token string) error {
	return s.tc.GET("/me", map[string]string{
		"Authorization": "Bearer " + token,
	})
}
