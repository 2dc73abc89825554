package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"catalog-service/app/config"
)

// Client wraps the Kratos public and admin APIs. The admin API owns
// identity creation and deletion; the public API owns password
// verification via the native login flow.
type Client struct {
	publicAPI *kratosclient.APIClient
	adminAPI  *kratosclient.APIClient
	publicURL string
	adminURL  string
	logger    *slog.Logger
}

// NewClient creates a new Kratos client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	// Validate URLs
	if !isValidURL(cfg.KratosPublicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", cfg.KratosPublicURL)
	}
	if !isValidURL(cfg.KratosAdminURL) {
		return nil, fmt.Errorf("invalid Kratos admin URL: %s", cfg.KratosAdminURL)
	}

	publicConfig := kratosclient.NewConfiguration()
	publicConfig.Servers = []kratosclient.ServerConfiguration{
		{URL: cfg.KratosPublicURL},
	}
	publicConfig.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	publicAPI := kratosclient.NewAPIClient(publicConfig)

	adminConfig := kratosclient.NewConfiguration()
	adminConfig.Servers = []kratosclient.ServerConfiguration{
		{URL: cfg.KratosAdminURL},
	}
	adminConfig.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	adminAPI := kratosclient.NewAPIClient(adminConfig)

	logger.Info("Kratos client initialized",
		"public_url", cfg.KratosPublicURL,
		"admin_url", cfg.KratosAdminURL)

	return &Client{
		publicAPI: publicAPI,
		adminAPI:  adminAPI,
		publicURL: cfg.KratosPublicURL,
		adminURL:  cfg.KratosAdminURL,
		logger:    logger,
	}, nil
}

// CreateIdentity registers a new identity with password credentials and
// returns the created identity together with the raw HTTP response so the
// caller can map provider status codes.
func (c *Client) CreateIdentity(ctx context.Context, email, password string) (*kratosclient.Identity, *http.Response, error) {
	body := kratosclient.CreateIdentityBody{
		SchemaId: "default",
		Traits: map[string]interface{}{
			"email": email,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}

	return c.adminAPI.IdentityAPI.CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
}

// DeleteIdentity removes an identity by its provider-assigned id.
func (c *Client) DeleteIdentity(ctx context.Context, identityID string) (*http.Response, error) {
	return c.adminAPI.IdentityAPI.DeleteIdentity(ctx, identityID).Execute()
}

// SubmitPasswordLogin runs a native login flow with the password method.
// A non-nil error means the credentials were rejected or the provider was
// unreachable.
func (c *Client) SubmitPasswordLogin(ctx context.Context, email, password string) (*kratosclient.SuccessfulNativeLogin, *http.Response, error) {
	flow, resp, err := c.publicAPI.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, resp, err
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&kratosclient.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: email,
			Password:   password,
		},
	)

	return c.publicAPI.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(body).
		Execute()
}

// HealthCheck checks if Kratos is healthy
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, response, err := c.publicAPI.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos public API: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("Kratos public API returned status %d", response.StatusCode)
	}

	return nil
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	// Must have a scheme (http or https) and host
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
