package repository

import (
	"context"
	"fmt"
	"os"
	"portfoliotracker/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// LotSourceRepository supplies the raw lots of the brokerage account.
type LotSourceRepository interface {
	FetchLots(ctx context.Context) ([]domain.RawLot, error)
}

type lotCsvRow struct {
	Symbol    string `csv:"symbol"`
	Exchange  string `csv:"exchange"`
	Conid     string `csv:"conid"`
	Name      string `csv:"name"`
	Isin      string `csv:"isin"`
	Currency  string `csv:"currency"`
	OpenDate  string `csv:"open_date"`
	Quantity  string `csv:"quantity"`
	CostBasis string `csv:"cost_basis"`
	IsOpen    string `csv:"is_open"`
}

type csvLotSourceRepositoryHandler struct {
	Path string
}

// NewCsvLotSourceRepository reads lots from a normalised brokerage export with
// one lot per row.
func NewCsvLotSourceRepository(path string) LotSourceRepository {
	return csvLotSourceRepositoryHandler{Path: path}
}

func (h csvLotSourceRepositoryHandler) FetchLots(ctx context.Context) ([]domain.RawLot, error) {
	f, err := os.Open(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lot export %s: %w", h.Path, err)
	}
	defer f.Close()

	rows := []lotCsvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse lot export %s: %w", h.Path, err)
	}

	out := []domain.RawLot{}
	for i, row := range rows {
		lot, err := row.toRawLot()
		if err != nil {
			return nil, fmt.Errorf("invalid lot on row %d: %w", i+2, err)
		}
		out = append(out, *lot)
	}

	return out, nil
}

func (r lotCsvRow) toRawLot() (*domain.RawLot, error) {
	symbol := strings.TrimSpace(r.Symbol)
	if symbol == "" {
		return nil, fmt.Errorf("missing symbol")
	}
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		return nil, fmt.Errorf("missing currency for %s", symbol)
	}
	openDate, err := time.Parse(time.DateOnly, strings.TrimSpace(r.OpenDate))
	if err != nil {
		return nil, fmt.Errorf("failed to parse open date %q: %w", r.OpenDate, err)
	}
	quantity, err := decimal.NewFromString(strings.TrimSpace(r.Quantity))
	if err != nil {
		return nil, fmt.Errorf("failed to parse quantity %q: %w", r.Quantity, err)
	}
	costBasis, err := decimal.NewFromString(strings.TrimSpace(r.CostBasis))
	if err != nil {
		return nil, fmt.Errorf("failed to parse cost basis %q: %w", r.CostBasis, err)
	}

	isOpen := true
	if s := strings.TrimSpace(r.IsOpen); s != "" {
		isOpen, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse is_open %q: %w", r.IsOpen, err)
		}
	}

	lot := &domain.RawLot{
		Symbol:   symbol,
		Exchange: strings.ToUpper(strings.TrimSpace(r.Exchange)),
		Name:     strings.TrimSpace(r.Name),
		Currency: currency,
		OpenDate: openDate,
		Quantity: quantity.Abs(),
		// exports report cost as a negative cash amount
		CostBasis: costBasis.Abs(),
		IsOpen:    isOpen,
	}
	if lot.Name == "" {
		lot.Name = symbol
	}
	if s := strings.TrimSpace(r.Conid); s != "" {
		conid, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse conid %q: %w", r.Conid, err)
		}
		lot.Conid = &conid
	}
	if s := strings.TrimSpace(r.Isin); s != "" {
		lot.Isin = &s
	}

	return lot, nil
}
