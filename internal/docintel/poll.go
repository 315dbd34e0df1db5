package docintel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/spigell/resume-insight/internal/utils"
	"go.uber.org/zap"
)

// poll waits for an accepted analysis to finish. Unlike submission failures,
// errors after acceptance are final: the document already reached the
// service, so another tier would not improve the outcome.
func (c *Client) poll(ctx context.Context, op *acceptedOperation) (*ExtractionResult, error) {
	lastStatus := ""

	for attempt := 1; attempt <= c.MaxPollAttempts; attempt++ {
		if err := utils.WaitFor(ctx, c.PollInterval); err != nil {
			return nil, err
		}

		parsed, err := c.fetchOperation(ctx, op.url)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("analysis status",
			zap.String("status", parsed.Status),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.MaxPollAttempts),
		)

		switch parsed.Status {
		case statusSucceeded:
			return buildResult(parsed, op)
		case statusFailed:
			if parsed.Error != nil {
				return nil, fmt.Errorf("analysis failed: %s: %s", parsed.Error.Code, parsed.Error.Message)
			}
			return nil, errors.New("analysis failed without error details")
		case statusRunning, statusNotStarted:
			lastStatus = parsed.Status
		default:
			return nil, fmt.Errorf("unknown analysis status %q", parsed.Status)
		}
	}

	return nil, &TimeoutError{Attempts: c.MaxPollAttempts, LastStatus: lastStatus}
}

func (c *Client) fetchOperation(ctx context.Context, url string) (*operationResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(keyHeader, c.key)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll analysis operation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poll analysis operation: bad status %s", resp.Status)
	}

	var parsed operationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse analysis operation response: %w", err)
	}

	return &parsed, nil
}

func buildResult(parsed *operationResponse, op *acceptedOperation) (*ExtractionResult, error) {
	if parsed.AnalyzeResult == nil || parsed.AnalyzeResult.Content == "" {
		return nil, errors.New("analysis succeeded but returned no content")
	}

	return &ExtractionResult{
		Text:       parsed.AnalyzeResult.Content,
		Method:     op.method,
		APIVersion: op.version,
		Pages:      parsed.AnalyzeResult.pageMetadata(),
	}, nil
}
