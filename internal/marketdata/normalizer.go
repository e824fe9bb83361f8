package marketdata

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"stockfolio/internal/models"
)

// Field alias tables for the upstream payload. The upstream schema is not
// stable across deployments: the same logical field arrives under different
// names (and sometimes nested one level down). Each list is probed in order
// and the first present value wins. Dotted entries are gjson paths.
var (
	symbolAliases = []string{"symbol", "securityCode", "stockSymbol", "id"}
	nameAliases   = []string{"name", "companyName", "securityName"}
	priceAliases  = []string{"price", "closingPrice", "priceInfo.currentPrice", "lastPrice"}
	openAliases   = []string{"open", "openPrice", "openingPrice"}
	highAliases   = []string{"high", "highPrice", "highTrade"}
	lowAliases    = []string{"low", "lowPrice", "lowTrade"}
	prevAliases   = []string{"previousClose", "previousClosePrice", "prevClose"}
	changeAliases = []string{"change", "priceChange", "changeAmount"}
	pctAliases    = []string{"percentageChange", "changePercentage", "percentChange"}
	volumeAliases = []string{"volume", "tradeVolume", "shareVolume", "quantity"}
)

// NormalizeQuote extracts a canonical Quote from one raw upstream record.
// It is total: any input, including an empty object, yields a fully populated
// Quote. Absent or non-numeric fields become 0, never null, so downstream
// arithmetic is always safe. The symbol is returned as extracted — matching
// against the tracked set is the caller's concern.
func NormalizeQuote(rec gjson.Result, asOf time.Time) models.Quote {
	q := models.Quote{
		Symbol:        strings.TrimSpace(firstString(rec, symbolAliases)),
		CompanyName:   strings.TrimSpace(firstString(rec, nameAliases)),
		AsOf:          asOf,
		Price:         firstFloat(rec, priceAliases),
		Open:          firstFloat(rec, openAliases),
		High:          firstFloat(rec, highAliases),
		Low:           firstFloat(rec, lowAliases),
		PreviousClose: firstFloat(rec, prevAliases),
		ChangePercent: firstFloat(rec, pctAliases),
		Volume:        firstInt(rec, volumeAliases),
	}

	// change is derived from price movement when the upstream omits it.
	if res, ok := firstResult(rec, changeAliases); ok {
		q.Change = numeric(res)
	} else {
		q.Change = q.Price - q.PreviousClose
	}

	return q
}

// firstResult probes the alias paths in order and returns the first value
// present in the record.
func firstResult(rec gjson.Result, paths []string) (gjson.Result, bool) {
	for _, path := range paths {
		if res := rec.Get(path); res.Exists() {
			return res, true
		}
	}
	return gjson.Result{}, false
}

func firstString(rec gjson.Result, paths []string) string {
	res, ok := firstResult(rec, paths)
	if !ok {
		return ""
	}
	return res.String()
}

func firstFloat(rec gjson.Result, paths []string) float64 {
	res, ok := firstResult(rec, paths)
	if !ok {
		return 0
	}
	return numeric(res)
}

func firstInt(rec gjson.Result, paths []string) int64 {
	res, ok := firstResult(rec, paths)
	if !ok {
		return 0
	}
	switch res.Type {
	case gjson.Number:
		return res.Int()
	case gjson.String:
		s := strings.TrimSpace(strings.ReplaceAll(res.String(), ",", ""))
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
	}
	return 0
}

// numeric coerces a JSON value to a float64, treating anything that does not
// parse cleanly (objects, booleans, NaN, Inf, garbage strings) as 0.
func numeric(res gjson.Result) float64 {
	var f float64
	switch res.Type {
	case gjson.Number:
		f = res.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(res.String(), ",", "")), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
