package expenses

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const rateUrlEnv = "EXPENSES_RATE_URL"

// defaultRateURL is the public exchange-rate endpoint. Appending the base
// currency code returns a JSON document with a "rates" object mapping
// currency code to the numeric rate relative to that base.
const defaultRateURL = "https://api.exchangerate-api.com/v4/latest"

var rateUrlFlag = flag.String("rate-url", "", "Base URL of the exchange-rate service.\n If missing it will read the environment variable \""+rateUrlEnv+"\", and default to "+defaultRateURL+".")

func rateServiceURL() string {
	if *rateUrlFlag == "" {
		*rateUrlFlag = os.Getenv(rateUrlEnv)
	}
	if *rateUrlFlag == "" {
		*rateUrlFlag = defaultRateURL
	}
	return *rateUrlFlag
}

// ConversionError reports a failed currency conversion: the rate service was
// unreachable, answered garbage, or does not quote the target currency.
type ConversionError struct {
	From, To string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: %v", e.From, e.To, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// RateService is a client for the remote exchange-rate service.
//
// Every lookup is a fresh, independent request: no caching, no retry. The
// underlying client carries a bounded timeout so an unresponsive service
// cannot block a conversion forever.
type RateService struct {
	base   string
	client *http.Client
}

// NewRateService returns a client for the service at base. An empty base
// resolves to the -rate-url flag, the EXPENSES_RATE_URL environment variable,
// or the public default, in that order.
func NewRateService(base string) *RateService {
	if base == "" {
		base = rateServiceURL()
	}
	return &RateService{
		base:   base,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Rates fetches the rate table for the given base currency, keyed by target
// currency code.
func (s *RateService) Rates(from string) (map[string]float64, error) {
	addr := s.base + "/" + url.PathEscape(from)
	var jobj any
	if err := jwget(s.client, addr, &jobj); err != nil {
		return nil, &ConversionError{From: from, Err: err}
	}

	// The table lives under $.rates; anything else in the payload is ignored.
	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return nil, &ConversionError{From: from, Err: fmt.Errorf("malformed response: %w", err)}
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, &ConversionError{From: from, Err: fmt.Errorf("malformed response: rates is not an object")}
	}

	rates := make(map[string]float64, len(jrates))
	for code, jrate := range jrates {
		rate, ok := jrate.(float64)
		if !ok {
			return nil, &ConversionError{From: from, Err: fmt.Errorf("malformed response: rate for %q is not a number", code)}
		}
		rates[code] = rate
	}
	return rates, nil
}

// Convert converts the amount into the target currency at the current rate,
// rounded half-up to display precision. A target currency absent from the
// service's table is an explicit *ConversionError, never a zero result.
func (s *RateService) Convert(amount Money, to string) (Money, error) {
	from := amount.Currency()
	if from == to {
		return amount.Round(), nil
	}
	rates, err := s.Rates(from)
	if err != nil {
		var cerr *ConversionError
		if errors.As(err, &cerr) {
			cerr.To = to
		}
		return Money{}, err
	}
	rate, ok := rates[to]
	if !ok {
		return Money{}, &ConversionError{From: from, To: to, Err: fmt.Errorf("no rate for %q in the %s table", to, from)}
	}
	converted := amount.Amount().Mul(decimal.NewFromFloat(rate))
	return M(converted, to).Round(), nil
}

// Conversion is the outcome of converting one record during a bulk run.
type Conversion struct {
	Expense Expense
	Result  Money
	Err     error
}

// ConvertBook converts every record of the book into the target currency.
// A failing record is reported in place and does not abort the remaining
// conversions.
func (s *RateService) ConvertBook(book *Book, to string) []Conversion {
	results := make([]Conversion, 0, book.Len())
	for _, e := range book.Expenses() {
		converted, err := s.Convert(e.Amount, to)
		results = append(results, Conversion{Expense: e, Result: converted, Err: err})
	}
	return results
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
