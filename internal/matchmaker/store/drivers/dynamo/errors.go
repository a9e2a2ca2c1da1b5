package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// mapErr translates SDK errors into the store taxonomy, keeping the SDK
// error in the chain.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	var (
		throughput *types.ProvisionedThroughputExceededException
		reqLimit   *types.RequestLimitExceeded
		internal   *types.InternalServerError
		missing    *types.ResourceNotFoundException
	)
	switch {
	case errors.As(err, &throughput), errors.As(err, &reqLimit),
		errors.As(err, &internal), errors.As(err, &missing):
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "UnrecognizedClientException",
			"MissingAuthenticationTokenException", "InvalidSignatureException":
			return fmt.Errorf("%w: %w", store.ErrPermissionDenied, err)
		case "ThrottlingException", "ServiceUnavailable", "RequestTimeout":
			return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}

	// An operation error without an API error underneath never reached the
	// service: DNS, connection refused, TLS and the like.
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	return err
}

// mapQueryErr is mapErr for index queries. DynamoDB reports a missing GSI
// as a ValidationException naming the index.
func mapQueryErr(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationException" &&
		strings.Contains(strings.ToLower(apiErr.ErrorMessage()), "index") {
		return fmt.Errorf("%w: %w", store.ErrIndexUnavailable, err)
	}
	return mapErr(err)
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", store.ErrMalformed, err)
}
