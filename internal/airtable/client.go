// Package airtable implements the RecordStore contract against the
// Airtable record API.
package airtable

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"shop-backend/internal/repository"
)

type listResponse struct {
	Records []repository.Record `json:"records"`
	Offset  string              `json:"offset,omitempty"`
}

type recordRequest struct {
	Fields map[string]any `json:"fields"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	http *resty.Client
}

// New returns a client scoped to a single base. baseURL is the API root
// (https://api.airtable.com/v0 in production, a test server in tests).
func New(baseURL, baseID, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL + "/" + baseID).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &Client{http: c}
}

// List fetches every record of the table, following the offset token
// across pages (the API caps pages at 100 records).
func (c *Client) List(ctx context.Context, table string, opts repository.ListOptions) ([]repository.Record, error) {
	params := url.Values{}
	for _, f := range opts.Fields {
		params.Add("fields[]", f)
	}
	for i, s := range opts.Sort {
		params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		params.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
	}
	if opts.View != "" {
		params.Set("view", opts.View)
	}
	if opts.MaxRecords > 0 {
		params.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}

	var records []repository.Record
	offset := ""
	for {
		req := c.http.R().
			SetContext(ctx).
			SetQueryParamsFromValues(params).
			SetResult(&listResponse{}).
			SetError(&apiError{})
		if offset != "" {
			req.SetQueryParam("offset", offset)
		}

		resp, err := req.Get("/" + table)
		if err != nil {
			return nil, fmt.Errorf("list %s: %v: %w", table, err, repository.ErrUpstream)
		}
		if resp.IsError() {
			return nil, storeError("list "+table, resp)
		}

		page := resp.Result().(*listResponse)
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (c *Client) Get(ctx context.Context, table, id string) (repository.Record, error) {
	var rec repository.Record

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&rec).
		SetError(&apiError{}).
		Get("/" + table + "/" + id)
	if err != nil {
		return rec, fmt.Errorf("get %s/%s: %v: %w", table, id, err, repository.ErrUpstream)
	}
	if resp.IsError() {
		return rec, storeError("get "+table+"/"+id, resp)
	}

	return rec, nil
}

func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (repository.Record, error) {
	var rec repository.Record

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(recordRequest{Fields: fields}).
		SetResult(&rec).
		SetError(&apiError{}).
		Post("/" + table)
	if err != nil {
		return rec, fmt.Errorf("create %s: %v: %w", table, err, repository.ErrUpstream)
	}
	if resp.IsError() {
		return rec, storeError("create "+table, resp)
	}

	return rec, nil
}

// Update sends only the given fields; columns absent from the map keep
// their stored values.
func (c *Client) Update(ctx context.Context, table, id string, fields map[string]any) (repository.Record, error) {
	var rec repository.Record

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(recordRequest{Fields: fields}).
		SetResult(&rec).
		SetError(&apiError{}).
		Patch("/" + table + "/" + id)
	if err != nil {
		return rec, fmt.Errorf("update %s/%s: %v: %w", table, id, err, repository.ErrUpstream)
	}
	if resp.IsError() {
		return rec, storeError("update "+table+"/"+id, resp)
	}

	return rec, nil
}

func (c *Client) Delete(ctx context.Context, table, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete("/" + table + "/" + id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %v: %w", table, id, err, repository.ErrUpstream)
	}
	if resp.IsError() {
		return storeError("delete "+table+"/"+id, resp)
	}

	return nil
}

// storeError keeps the upstream error message in the chain so callers
// that surface it for debugging still can.
func storeError(op string, resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	msg := resp.Status()
	if e, ok := resp.Error().(*apiError); ok && e.Error.Message != "" {
		msg = e.Error.Message
	}
	return fmt.Errorf("%s: %s: %w", op, msg, repository.ErrUpstream)
}
