package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/goran-ethernal/ChainCache/internal/common"
)

// Error classes used as the error_type metric label.
const (
	ErrTypeTooManyResults = "too_many_results"
	ErrTypeRangeTooLarge  = "range_too_large"
	ErrTypeRateLimit      = "rate_limit"
	ErrTypeTimeout        = "timeout"
	ErrTypeNetwork        = "network"
	ErrTypeServer         = "server"
	ErrTypeReverted       = "reverted"
	ErrTypeCancelled      = "cancelled"
	ErrTypeOther          = "other"
)

var (
	tooManyResultsRe  = regexp.MustCompile(`(?i)query returned more than \d+ results`)
	suggestedRangeRe  = regexp.MustCompile(`\[(0x[0-9a-fA-F]+),\s*(0x[0-9a-fA-F]+)\]`)
	rangeTooLargeSubs = []string{
		"block range is too wide",
		"block range too large",
		"exceed maximum block range",
		"range limit exceeded",
		"query exceeds max block range",
	}
)

// IsTooManyResultsError checks if the error is an RPC "too many results" error (DataError with message in ErrorData).
// The error data is returned so a suggested block range can be parsed from it.
func IsTooManyResultsError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return false, ""
	}

	errData := fmt.Sprintf("%v", dataErr.ErrorData())

	return tooManyResultsRe.MatchString(errData), errData
}

// IsRangeTooLargeError reports whether the provider rejected an eth_getLogs call because
// its block range is wider than the provider allows.
func IsRangeTooLargeError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, sub := range rangeTooLargeSubs {
		if strings.Contains(msg, sub) {
			return true
		}
	}

	return false
}

// ShouldSplitRange reports whether a failed eth_getLogs call should be retried over smaller ranges.
func ShouldSplitRange(err error) bool {
	tooMany, _ := IsTooManyResultsError(err)
	return tooMany || IsRangeTooLargeError(err)
}

// ParseSuggestedBlockRange attempts to extract the suggested block range from the error message.
// Expected format: "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."
func ParseSuggestedBlockRange(err string) (fromBlock, toBlock uint64, ok bool) {
	if err == "" {
		return 0, 0, false
	}

	matches := suggestedRangeRe.FindStringSubmatch(err)
	if len(matches) != 3 { //nolint:mnd
		return 0, 0, false
	}

	from, err1 := common.ParseBlockNumber(matches[1])
	to, err2 := common.ParseBlockNumber(matches[2])
	if err1 != nil || err2 != nil || from > to {
		return 0, 0, false
	}

	return from, to, true
}

// classifyError maps an error onto one of the ErrType classes.
func classifyError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return ErrTypeCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTypeTimeout
	}
	if tooMany, _ := IsTooManyResultsError(err); tooMany {
		return ErrTypeTooManyResults
	}
	if IsRangeTooLargeError(err) {
		return ErrTypeRangeTooLarge
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "execution reverted"):
		return ErrTypeReverted
	case containsAny(msg, "429", "too many requests", "rate limit"):
		return ErrTypeRateLimit
	case containsAny(msg, "timeout", "deadline exceeded"):
		return ErrTypeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		containsAny(msg, "connection pool", "no available connection") {
		return ErrTypeNetwork
	}

	if containsAny(msg, "502", "503", "504", "bad gateway", "service unavailable", "gateway timeout") {
		return ErrTypeServer
	}

	return ErrTypeOther
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
