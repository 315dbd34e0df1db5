package docintel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spigell/resume-insight/internal/document"
	"github.com/spigell/resume-insight/internal/logger"
	"github.com/spigell/resume-insight/internal/utils"
	"go.uber.org/zap"
)

const (
	structuredAPIVersion = "2024-02-29-preview"
	legacyAPIVersion     = "2022-08-31"

	maxErrorBodyLength = 200
)

// restCandidates are the raw-submission API versions, newest first. The
// service's surface varies by deployment tier, so version selection is a
// search with first-acceptance semantics.
var restCandidates = []struct {
	method  Method
	version string
}{
	{method: MethodRESTV2, version: "2024-02-29-preview"},
	{method: MethodRESTV1, version: "2023-07-31"},
}

// acceptedOperation is an analysis the service has enqueued for async
// processing, together with the tier that got it accepted.
type acceptedOperation struct {
	url     string
	method  Method
	version string
}

// Extract obtains plain text from the document. Tiers are attempted in
// order: structured JSON submission, raw binary submission per API version,
// then the legacy endpoint shape. It fails only when every tier is
// exhausted, with an error naming each attempt.
func (c *Client) Extract(ctx context.Context, doc *document.Raw) (*ExtractionResult, error) {
	if err := c.validateCredentials(); err != nil {
		return nil, err
	}

	var failures []*TransientError

	if !c.DisableStructured {
		result, err := c.extractStructured(ctx, doc)
		if err == nil {
			return result, nil
		}

		failures = append(failures, &TransientError{
			Method:     MethodSDKClient,
			APIVersion: structuredAPIVersion,
			Reason:     err.Error(),
		})
		c.logger.Warn("structured submission failed, falling back to raw submission", zap.Error(err))
	}

	accepted := c.submitRawTiers(ctx, doc, &failures)

	if accepted == nil {
		c.logger.Warn("no api version accepted the analysis, trying legacy endpoint")

		opURL, terr := c.submit(ctx, c.legacyURL(), bytes.NewReader(doc.Data), pdfContentType, MethodLegacy, legacyAPIVersion)
		if terr != nil {
			failures = append(failures, terr)
			return nil, &ExtractionError{Failures: failures}
		}

		accepted = &acceptedOperation{url: opURL, method: MethodLegacy, version: legacyAPIVersion}
	}

	c.logger.Info("analysis accepted", logger.StringFields(
		logger.StringField{Key: logger.FieldMethod, Value: string(accepted.method)},
		logger.StringField{Key: logger.FieldAPIVersion, Value: accepted.version},
	)...)

	return c.poll(ctx, accepted)
}

// submitRawTiers posts the raw document bytes against each candidate API
// version and stops at the first acceptance. A 401 is recorded and the loop
// continues: other versions may route through a different auth path.
func (c *Client) submitRawTiers(ctx context.Context, doc *document.Raw, failures *[]*TransientError) *acceptedOperation {
	for _, candidate := range restCandidates {
		opURL, terr := c.submit(ctx, c.analyzeURL(candidate.version), bytes.NewReader(doc.Data), pdfContentType, candidate.method, candidate.version)
		if terr != nil {
			*failures = append(*failures, terr)
			c.logger.Debug("analysis submission not accepted",
				zap.String(logger.FieldAPIVersion, candidate.version),
				zap.String("reason", terr.Reason),
			)
			continue
		}

		return &acceptedOperation{url: opURL, method: candidate.method, version: candidate.version}
	}

	return nil
}

// extractStructured submits the document as a typed JSON request against the
// newest API version and polls the result. Any failure here is absorbed by
// the caller and triggers the raw tiers.
func (c *Client) extractStructured(ctx context.Context, doc *document.Raw) (*ExtractionResult, error) {
	payload, err := json.Marshal(analyzeRequest{
		Base64Source: base64.StdEncoding.EncodeToString(doc.Data),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	opURL, terr := c.submit(ctx, c.analyzeURL(structuredAPIVersion), bytes.NewReader(payload), "application/json", MethodSDKClient, structuredAPIVersion)
	if terr != nil {
		return nil, terr
	}

	return c.poll(ctx, &acceptedOperation{
		url:     opURL,
		method:  MethodSDKClient,
		version: structuredAPIVersion,
	})
}

// submit posts one analysis request. Acceptance means HTTP 202 with an
// Operation-Location header; anything else becomes a TransientError for the
// tier chain to record.
func (c *Client) submit(ctx context.Context, url string, body io.Reader, contentType string, method Method, version string) (string, *TransientError) {
	fail := func(reason string) (string, *TransientError) {
		return "", &TransientError{Method: method, APIVersion: version, Reason: reason}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fail(err.Error())
	}
	req.Header.Set(keyHeader, c.key)
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("submit analysis request",
		zap.String("url", url),
		zap.String(logger.FieldAPIVersion, version),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fail(err.Error())
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusAccepted:
		opURL := resp.Header.Get("Operation-Location")
		if opURL == "" {
			return fail("no operation location returned")
		}
		return opURL, nil
	case http.StatusUnauthorized:
		return fail(fmt.Sprintf("authentication failed: %s", utils.TruncateForLog(string(raw), maxErrorBodyLength)))
	default:
		return fail(fmt.Sprintf("unexpected status %s: %s", resp.Status, utils.TruncateForLog(string(raw), maxErrorBodyLength)))
	}
}

func (c *Client) analyzeURL(version string) string {
	return fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s", c.endpoint, modelID, version)
}

func (c *Client) legacyURL() string {
	return fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=%s", c.endpoint, modelID, legacyAPIVersion)
}
