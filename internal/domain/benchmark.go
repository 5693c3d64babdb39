package domain

import (
	"fmt"
	"sort"
)

type Benchmark struct {
	Key      string
	Ticker   string
	Currency string
	Name     string
}

var benchmarks = map[string]Benchmark{
	"sp500": {
		Key:      "sp500",
		Ticker:   "^GSPC",
		Currency: "USD",
		Name:     "S&P 500",
	},
	"nasdaq": {
		Key:      "nasdaq",
		Ticker:   "^IXIC",
		Currency: "USD",
		Name:     "NASDAQ Composite",
	},
	"stoxx600": {
		Key:      "stoxx600",
		Ticker:   "^STOXX",
		Currency: "EUR",
		Name:     "STOXX Europe 600",
	},
}

func GetBenchmark(key string) (Benchmark, error) {
	b, ok := benchmarks[key]
	if !ok {
		return Benchmark{}, fmt.Errorf("%w: %s", ErrUnknownBenchmark, key)
	}
	return b, nil
}

func ListBenchmarks() []Benchmark {
	out := []Benchmark{}
	for _, b := range benchmarks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
