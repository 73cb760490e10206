package edgar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient points a client at a local test server.
func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-key")
	c.BaseURL = srv.URL
	return c, srv
}

func TestHoldingsBareArray(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-key"); got != "test-key" {
			t.Errorf("x-rapidapi-key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("cik"); got != "0001067983" {
			t.Errorf("cik = %q", got)
		}
		w.Write([]byte(`[{"nameOfIssuer":"APPLE INC","value":174300000}]`))
	}))
	defer srv.Close()

	records, err := c.Holdings(context.Background(), "0001067983")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0]["nameOfIssuer"] != "APPLE INC" {
		t.Errorf("records = %v", records)
	}
}

func TestHoldingsWrappedObject(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cik":"0001067983","holdings":[{"name":"Apple"},{"name":"Coke"}]}`))
	}))
	defer srv.Close()

	records, err := c.Holdings(context.Background(), "0001067983")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("len = %d, want 2", len(records))
	}
}

func TestHoldingsKeepsNumberPrecision(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"shares":9007199254740993}]`))
	}))
	defer srv.Close()

	records, err := c.Holdings(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	// larger than 2^53: survives only as json.Number
	n, ok := records[0]["shares"].(interface{ String() string })
	if !ok || n.String() != "9007199254740993" {
		t.Errorf("shares = %v (%T)", records[0]["shares"], records[0]["shares"])
	}
}

func TestAuthError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad key", status)
		}))
		_, err := c.Holdings(context.Background(), "1")
		srv.Close()

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("status %d: err = %v, want *AuthError", status, err)
		}
		if authErr.Status != status {
			t.Errorf("Status = %d, want %d", authErr.Status, status)
		}
	}
}

func TestHTTPErrorTruncatesBody(t *testing.T) {
	long := strings.Repeat("x", 1000)
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, long, http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := c.Holdings(context.Background(), "1")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want *HTTPError", err)
	}
	if httpErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d", httpErr.Status)
	}
	if len(httpErr.Body) != errBodyLimit {
		t.Errorf("body length = %d, want %d", len(httpErr.Body), errBodyLimit)
	}
}

func TestTransportError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // kill the server before the request

	_, err := c.Holdings(context.Background(), "1")
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if tErr.Unwrap() == nil {
		t.Error("TransportError should carry its cause")
	}
}

func TestSearchMixedCIKTypes(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "bridgewater" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`{"results":[{"cik":"0001350694","name":"Bridgewater Associates"},{"cik":1029160,"name":"Soros Fund Management"}]}`))
	}))
	defer srv.Close()

	companies, err := c.Search(context.Background(), "bridgewater")
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 2 {
		t.Fatalf("len = %d, want 2", len(companies))
	}
	if companies[0].CIK != "0001350694" || companies[1].CIK != "1029160" {
		t.Errorf("companies = %+v", companies)
	}
}

func TestSearchEmptyWrapper(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":0}`))
	}))
	defer srv.Close()

	companies, err := c.Search(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(companies) != 0 {
		t.Errorf("len = %d, want 0", len(companies))
	}
}

func TestFilings(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("formType") != "13F-HR" || q.Get("limit") != "4" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"filings":[{"formType":"13F-HR","filingDate":"2025-08-14","periodOfReport":"2025-06-30","accessionNumber":"0000950123-25-007777"}]}`))
	}))
	defer srv.Close()

	filings, err := c.Filings(context.Background(), "0001067983", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(filings) != 1 || filings[0].PeriodOfReport != "2025-06-30" {
		t.Errorf("filings = %+v", filings)
	}
}
