package l1_service

import (
	"strings"
)

var yahooSuffixes = map[string]string{
	"XETRA":    ".DE",
	"IBIS":     ".DE",
	"IBIS2":    ".DE",
	"FWB":      ".F",
	"FWB2":     ".F",
	"SWB":      ".SG",
	"LSE":      ".L",
	"LSEETF":   ".L",
	"SBF":      ".PA",
	"EURONEXT": ".PA",
	"AEB":      ".AS",
	"BM":       ".MC",
	"EBS":      ".SW",
	"SEHK":     ".HK",
	"TSE":      ".T",
	"TSX":      ".TO",
	"ASX":      ".AX",
}

var germanExchanges = map[string]bool{
	"XETRA":  true,
	"IBIS":   true,
	"IBIS2":  true,
	"FWB":    true,
	"FWB2":   true,
	"SWB":    true,
	"GETTEX": true,
	"TGATE":  true,
}

var usExchanges = map[string]bool{
	"":         true,
	"NASDAQ":   true,
	"NYSE":     true,
	"ARCA":     true,
	"NYSEARCA": true,
	"AMEX":     true,
	"BATS":     true,
	"IEX":      true,
	"ISLAND":   true,
	"SMART":    true,
}

func IsUSExchange(exchange string) bool {
	return usExchanges[strings.ToUpper(strings.TrimSpace(exchange))]
}

// YahooTicker applies the builtin exchange suffix, e.g. SAP on IBIS -> SAP.DE.
func YahooTicker(symbol, exchange string) string {
	return normalizeSymbol(symbol) + yahooSuffixes[strings.ToUpper(strings.TrimSpace(exchange))]
}

// YahooTickerCandidates lists the tickers to try in order when no mapping is
// stored. German listings are often only quoted on one venue, so those also
// try .DE, .F and the bare symbol.
func YahooTickerCandidates(symbol, exchange string) []string {
	base := normalizeSymbol(symbol)
	ex := strings.ToUpper(strings.TrimSpace(exchange))

	candidates := []string{YahooTicker(symbol, exchange)}
	if germanExchanges[ex] {
		candidates = append(candidates, base+".DE", base+".F", base)
	} else if yahooSuffixes[ex] != "" {
		candidates = append(candidates, base)
	}

	out := []string{}
	seen := map[string]bool{}
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// brokers export class shares as "BRK B", yahoo wants "BRK-B"
func normalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ReplaceAll(s, ".", "-")
}
