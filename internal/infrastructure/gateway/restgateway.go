package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	restPath          = "/rest/v1/"
	maxErrorBodyBytes = 2048
)

// RESTGateway talks to a PostgREST endpoint such as the one fronting a hosted
// Supabase database.
type RESTGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewRESTGateway(baseURL, apiKey string, timeout time.Duration) *RESTGateway {
	return NewRESTGatewayWithClient(baseURL, apiKey, &http.Client{Timeout: timeout})
}

func NewRESTGatewayWithClient(baseURL, apiKey string, client *http.Client) *RESTGateway {
	return &RESTGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (g *RESTGateway) Select(ctx context.Context, q *Query, dest any) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if !isSlicePtr(dest) {
		return 0, ErrInvalidDestination
	}

	params := encodeFilters(q)
	if len(q.Columns) > 0 {
		params.Set("select", strings.Join(q.Columns, ","))
	} else {
		params.Set("select", "*")
	}
	if len(q.Orders) > 0 {
		parts := make([]string, len(q.Orders))
		for i, o := range q.Orders {
			dir := "asc"
			if o.Desc {
				dir = "desc"
			}
			parts[i] = o.Column + "." + dir
		}
		params.Set("order", strings.Join(parts, ","))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	header := http.Header{}
	if q.Count {
		header.Set("Prefer", "count=exact")
	}

	resp, err := g.do(ctx, http.MethodGet, q.Table, params, header, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return 0, fmt.Errorf("decode %s rows: %w", q.Table, err)
	}

	if !q.Count {
		return 0, nil
	}
	total, err := parseContentRange(resp.Header.Get("Content-Range"))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", q.Table, err)
	}
	return total, nil
}

func (g *RESTGateway) Insert(ctx context.Context, table string, row any) error {
	if err := ValidateIdentifier(table); err != nil {
		return err
	}
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode %s row: %w", table, err)
	}

	header := http.Header{}
	header.Set("Prefer", "return=representation")
	resp, err := g.do(ctx, http.MethodPost, table, nil, header, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The representation comes back as a one-element array.
	stored := reflect.New(reflect.SliceOf(reflect.TypeOf(row).Elem()))
	if err := json.NewDecoder(resp.Body).Decode(stored.Interface()); err != nil {
		return fmt.Errorf("decode inserted %s row: %w", table, err)
	}
	if stored.Elem().Len() > 0 {
		reflect.ValueOf(row).Elem().Set(stored.Elem().Index(0))
	}
	return nil
}

func (g *RESTGateway) Update(ctx context.Context, q *Query, values map[string]any) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if !q.HasFilters() {
		return 0, ErrUnfilteredUpdate
	}
	for col := range values {
		if err := ValidateIdentifier(col); err != nil {
			return 0, err
		}
	}
	body, err := json.Marshal(values)
	if err != nil {
		return 0, fmt.Errorf("encode %s update: %w", q.Table, err)
	}

	header := http.Header{}
	header.Set("Prefer", "return=representation")
	resp, err := g.do(ctx, http.MethodPatch, q.Table, encodeFilters(q), header, body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decode %s update: %w", q.Table, err)
	}
	return int64(len(rows)), nil
}

func (g *RESTGateway) Ping(ctx context.Context) error {
	resp, err := g.do(ctx, http.MethodGet, "", nil, nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (g *RESTGateway) do(ctx context.Context, method, table string, params url.Values, header http.Header, body []byte) (*http.Response, error) {
	endpoint := g.baseURL + restPath + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("apikey", g.apiKey)
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, table, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &StatusError{Method: method, Table: table, Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	return resp, nil
}

// StatusError is a non-2xx answer from the REST endpoint.
type StatusError struct {
	Method string
	Table  string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Table, e.Status, e.Body)
}

func encodeFilters(q *Query) url.Values {
	params := url.Values{}
	for _, f := range q.Filters {
		params.Add(f.Column, encodeCondition(f, false))
	}
	for _, group := range q.AnyOf {
		parts := make([]string, len(group))
		for i, f := range group {
			parts[i] = f.Column + "." + encodeCondition(f, true)
		}
		params.Add("or", "("+strings.Join(parts, ",")+")")
	}
	return params
}

// encodeCondition renders "op.value". Values nested in an or group are quoted
// when they contain list delimiters.
func encodeCondition(f Filter, nested bool) string {
	quote := func(s string) string {
		if nested {
			return quoteValue(s)
		}
		return s
	}
	switch f.Op {
	case OpEq:
		if f.Value == nil {
			return "is.null"
		}
	case OpNeq:
		if f.Value == nil {
			return "not.is.null"
		}
	case OpIn, OpNotIn:
		values := f.Value.([]any)
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = quoteValue(formatValue(v))
		}
		return string(f.Op) + ".(" + strings.Join(parts, ",") + ")"
	case OpContains:
		return string(f.Op) + "." + quote("*"+restLikeTerm(f.Value.(string))+"*")
	}
	return string(f.Op) + "." + quote(formatValue(f.Value))
}

func formatValue(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return "null"
		}
		return t.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// quoteValue wraps values holding PostgREST list delimiters in double quotes.
// restLikeTerm escapes a search term for an ilike filter. PostgreSQL's default
// LIKE escape is a backslash. PostgREST rewrites every "*" to "%" and offers
// no escape for it, so a literal "*" is sent as the single-character wildcard.
func restLikeTerm(term string) string {
	return strings.ReplaceAll(escapeLike(term, '\\'), "*", "_")
}

func quoteValue(s string) string {
	if !strings.ContainsAny(s, `,()":`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// parseContentRange reads the total from headers like "0-9/15" or "*/0".
func parseContentRange(h string) (int64, error) {
	idx := strings.LastIndex(h, "/")
	if idx < 0 || idx == len(h)-1 {
		return 0, fmt.Errorf("missing total in Content-Range %q", h)
	}
	total := h[idx+1:]
	if total == "*" {
		return 0, fmt.Errorf("server did not report an exact count")
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid Content-Range %q: %w", h, err)
	}
	return n, nil
}
