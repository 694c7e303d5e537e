// Copyright (c) 2026 UL.CO by Taruli Pasaribu <hello@ulco.id>
// All rights reserved. See LICENSE for details.

// Package price normalizes product prices into the canonical display
// form "IDR <comma-grouped number>". A caller-supplied string is stored
// verbatim (prices like "Custom Quote" are legal); numbers are formatted.
package price

import (
	"encoding/json"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer groups digits with commas ("750,000"), matching the display
// convention used across the site.
var printer = message.NewPrinter(language.English)

// Display normalizes a decoded JSON price value. Strings pass through
// untouched, with no validation that they match the canonical form. Numbers
// (float64 from encoding/json, json.Number, or Go ints) become
// "IDR <formatted>".
func Display(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case json.Number:
		if f, err := p.Float64(); err == nil {
			return Format(f)
		}
		return "IDR " + p.String()
	case float64:
		return Format(p)
	case float32:
		return Format(float64(p))
	case int:
		return Format(float64(p))
	case int64:
		return Format(float64(p))
	default:
		return ""
	}
}

// Format renders a numeric amount in the canonical display form.
func Format(amount float64) string {
	return printer.Sprintf("IDR %v", number.Decimal(amount))
}
