// normalize.go
package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pivolan/go_utils"
)

// MissingText marks a text field whose raw value matched the null vocabulary.
const MissingText = "missing"

// euroToUsdRate — фиксированная бизнес-константа конвертации, не настраивается.
const euroToUsdRate = 1.2

var (
	nonDigitRe   = regexp.MustCompile(`\D`)
	notPriceRe   = regexp.MustCompile(`[^\d.]`)
	dateSepRe     = regexp.MustCompile(`[T,;]`)
	meridiemDotRe = regexp.MustCompile(`(?i)([ap])\.m\.`)
	meridiemRe    = regexp.MustCompile(`(?i)(am|pm)\b`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
)

// textNullSentinels is the exact vocabulary treated as "no data". Kept
// verbatim, not a generalized null heuristic.
var textNullSentinels = []string{"NULL", "null", "<null>", "-", "\t", `""`, "''", "", `" "`, "' '"}

// cleanPhone очищает телефон от всех нецифровых символов.
func cleanPhone(phone string) string {
	if phone == "" {
		return phone
	}
	return nonDigitRe.ReplaceAllString(phone, "")
}

// cleanPrice parses a dirty money string. A euro marker (EUR or €) converts
// the parsed value at euroToUsdRate rounded to two decimals; everything else
// is returned as parsed. Unparseable input degrades to 0.0.
func cleanPrice(raw string) float64 {
	if raw == "" {
		return 0.0
	}
	s := strings.TrimSpace(raw)
	isEuro := strings.Contains(s, "EUR") || strings.Contains(s, "€")
	s = strings.ReplaceAll(s, "¢", ".")
	s = strings.ReplaceAll(s, ",", ".")
	s = notPriceRe.ReplaceAllString(s, "")
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		val = 0.0
	}
	if isEuro {
		return roundToTwo(val * euroToUsdRate)
	}
	return val
}

// cleanQuantity coerces a quantity to a number, 0 on any failure.
func cleanQuantity(raw string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return val
}

// fixTimestamp приводит грязную метку времени к единому виду перед парсингом:
// разделители T , ; заменяются пробелом, маркеры "a.m."/"p.m." в любом
// регистре, с точками или без, становятся строчными am/pm, повторные пробелы
// схлопываются.
func fixTimestamp(raw string) string {
	if raw == "" {
		return raw
	}
	s := strings.TrimSpace(raw)
	s = dateSepRe.ReplaceAllString(s, " ")
	s = meridiemDotRe.ReplaceAllString(s, "${1}m")
	s = meridiemRe.ReplaceAllStringFunc(s, strings.ToLower)
	return multiSpaceRe.ReplaceAllString(s, " ")
}

// dateTimeLayouts are tried in order. Ambiguous numeric layouts are
// month-before-day. Meridiem layouts are lowercase because fixTimestamp
// lowercases the am/pm markers.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 3:04 pm",
	"2006-01-02 3 pm",
	"2006-01-02 3pm",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006 3:04 pm",
	"01/02/2006",
	"01-02-2006 15:04:05",
	"01-02-2006",
	"02 Jan 2006 15:04:05",
	"02 Jan 2006",
	"Jan 2 2006 15:04:05",
	"Jan 2 2006",
	"January 2 2006",
}

// tryParseDateTime parses a timestamp already passed through fixTimestamp.
func tryParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

// cleanText trims a text field and maps null sentinels to MissingText.
func cleanText(raw string) string {
	s := strings.TrimSpace(raw)
	if go_utils.InArray(s, textNullSentinels) {
		return MissingText
	}
	return s
}

// roundToTwo округляет число до двух знаков после запятой.
func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}
