package validation

import (
	"regexp"
	"strings"

	"github.com/jkoster/portfolio-performance-backend/internal/api/request"
)

// tickerPattern accepts common exchange symbols: letters and digits
// with optional dot or dash segments (BRK.B, BF-B), up to 12 chars.
var tickerPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,8}([.-][A-Za-z0-9]{1,4})?$`)

// ValidateCreatePosition checks a create request. The calculation core
// assumes non-negative sanity-checked inputs, so this is where negative
// or malformed values are rejected.
func ValidateCreatePosition(req request.CreatePositionRequest) error {
	errors := make(map[string]string)

	ticker := strings.TrimSpace(req.Ticker)
	if ticker == "" {
		errors["ticker"] = "ticker is required"
	} else if !tickerPattern.MatchString(ticker) {
		errors["ticker"] = "ticker must be a valid exchange symbol"
	}

	if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}
	if len(req.Sector) > 50 {
		errors["sector"] = "sector must be 50 characters or less"
	}

	if req.AvgCost < 0 {
		errors["avgCost"] = "average cost cannot be negative"
	}
	if req.CurrentPrice < 0 {
		errors["currentPrice"] = "current price cannot be negative"
	}
	if req.Shares < 0 {
		errors["shares"] = "shares cannot be negative"
	}
	if req.YearsHeld < 0 {
		errors["yearsHeld"] = "years held cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdatePosition checks a partial update request.
// Only provided fields are validated.
func ValidateUpdatePosition(req request.UpdatePositionRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && len(*req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}
	if req.Sector != nil && len(*req.Sector) > 50 {
		errors["sector"] = "sector must be 50 characters or less"
	}
	if req.AvgCost != nil && *req.AvgCost < 0 {
		errors["avgCost"] = "average cost cannot be negative"
	}
	if req.CurrentPrice != nil && *req.CurrentPrice < 0 {
		errors["currentPrice"] = "current price cannot be negative"
	}
	if req.Shares != nil && *req.Shares < 0 {
		errors["shares"] = "shares cannot be negative"
	}
	if req.YearsHeld != nil && *req.YearsHeld < 0 {
		errors["yearsHeld"] = "years held cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
