package fhir_annuaire

import (
	"annuaire-service/internal/app/config"
	"annuaire-service/internal/app/contracts"
	"annuaire-service/internal/pkg/constvars"
	"annuaire-service/internal/pkg/exceptions"
	"annuaire-service/internal/pkg/fhir_dto"
	"annuaire-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type annuaireFhirClient struct {
	BaseUrl    string
	APIKey     string
	Log        *zap.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	quota      contracts.CallQuota
}

func NewAnnuaireFhirClient(internalConfig *config.InternalConfig, quota contracts.CallQuota, logger *zap.Logger) contracts.AnnuaireClient {
	return &annuaireFhirClient{
		BaseUrl:    strings.TrimSuffix(internalConfig.Annuaire.BaseUrl, "/"),
		APIKey:     internalConfig.Annuaire.APIKey,
		Log:        logger,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(internalConfig.Annuaire.CallsPerSecond), 1),
		quota:      quota,
	}
}

func (c *annuaireFhirClient) SearchPractitioners(ctx context.Context, params url.Values) (*fhir_dto.Bundle, error) {
	return c.search(ctx, constvars.ResourcePractitioner, params)
}

func (c *annuaireFhirClient) SearchPractitionerRoles(ctx context.Context, params url.Values) (*fhir_dto.Bundle, error) {
	return c.search(ctx, constvars.ResourcePractitionerRole, params)
}

func (c *annuaireFhirClient) SearchOrganizations(ctx context.Context, params url.Values) (*fhir_dto.Bundle, error) {
	return c.search(ctx, constvars.ResourceOrganization, params)
}

func (c *annuaireFhirClient) SearchByURL(ctx context.Context, rawURL string) (*fhir_dto.Bundle, error) {
	return c.get(ctx, rawURL, constvars.ResourceBundle)
}

func (c *annuaireFhirClient) search(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	searchURL := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	if len(params) > 0 {
		searchURL += "?" + params.Encode()
	}
	return c.get(ctx, searchURL, resourceType)
}

func (c *annuaireFhirClient) get(ctx context.Context, searchURL, resourceType string) (*fhir_dto.Bundle, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if err := c.quota.Allow(ctx); err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("annuaireFhirClient.get built URL",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFhirUrlKey, searchURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, searchURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderEsanteAPIKey, c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("annuaireFhirClient.get error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, exceptions.ErrGetFHIRResource(readErr, resourceType)
		}

		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			fhirErrorIssue := errors.New(outcome.Issue[0].Diagnostics)
			return nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, resourceType)
		}
		return nil, exceptions.ErrGetFHIRResource(fmt.Errorf("registry returned status %d", resp.StatusCode), resourceType)
	}

	bundle := new(fhir_dto.Bundle)
	if err := json.NewDecoder(resp.Body).Decode(bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	return bundle, nil
}
