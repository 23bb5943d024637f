// Package fit is a minimal client for the Google Fit REST API, fetching
// the raw weight samples and sleep-stage segments the sync pipeline
// consumes. Token acquisition is the caller's concern; the client only
// needs a TokenSource.
package fit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/health-tracker/internal/sleep"
	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://www.googleapis.com/fitness/v1"

const (
	weightDataType = "com.google.weight"
	sleepDataType  = "com.google.sleep.segment"

	dayMillis = 24 * 60 * 60 * 1000
)

// stageLabels maps the provider's sleep-stage enum onto raw labels. The
// aggregator keeps the four canonical stages and discards the rest.
var stageLabels = map[int64]string{
	1: "awake",
	2: "sleep",
	3: "out_of_bed",
	4: "light",
	5: "deep",
	6: "rem",
}

// WeightSample is one time-stamped scalar weight reading.
type WeightSample struct {
	Date     time.Time
	WeightKg float64
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client whose requests are authorized by ts.
func NewClient(ctx context.Context, ts oauth2.TokenSource) *Client {
	return &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		baseURL:    DefaultBaseURL,
	}
}

// NewClientWithBaseURL is intended for tests against a stub server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

type aggregateRequest struct {
	AggregateBy     []aggregateBy `json:"aggregateBy"`
	BucketByTime    *bucketByTime `json:"bucketByTime,omitempty"`
	StartTimeMillis int64         `json:"startTimeMillis"`
	EndTimeMillis   int64         `json:"endTimeMillis"`
}

type aggregateBy struct {
	DataTypeName string `json:"dataTypeName"`
}

type bucketByTime struct {
	DurationMillis int64 `json:"durationMillis"`
}

type aggregateResponse struct {
	Bucket []struct {
		StartTimeMillis string `json:"startTimeMillis"`
		Dataset         []struct {
			Point []struct {
				StartTimeNanos string `json:"startTimeNanos"`
				EndTimeNanos   string `json:"endTimeNanos"`
				Value          []struct {
					FpVal  *float64 `json:"fpVal,omitempty"`
					IntVal *int64   `json:"intVal,omitempty"`
				} `json:"value"`
			} `json:"point"`
		} `json:"dataset"`
	} `json:"bucket"`
}

// WeightSamples fetches daily-bucketed weight readings in [from, to].
func (c *Client) WeightSamples(ctx context.Context, from, to time.Time) ([]WeightSample, error) {
	resp, err := c.aggregate(ctx, aggregateRequest{
		AggregateBy:     []aggregateBy{{DataTypeName: weightDataType}},
		BucketByTime:    &bucketByTime{DurationMillis: dayMillis},
		StartTimeMillis: from.UnixMilli(),
		EndTimeMillis:   to.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	var samples []WeightSample
	for _, bucket := range resp.Bucket {
		startMillis, err := strconv.ParseInt(bucket.StartTimeMillis, 10, 64)
		if err != nil {
			continue
		}
		for _, ds := range bucket.Dataset {
			for _, point := range ds.Point {
				if len(point.Value) == 0 || point.Value[0].FpVal == nil {
					continue
				}
				samples = append(samples, WeightSample{
					Date:     time.UnixMilli(startMillis).UTC(),
					WeightKg: *point.Value[0].FpVal,
				})
			}
		}
	}
	return samples, nil
}

// SleepSegments fetches raw sleep-stage segments in [from, to].
func (c *Client) SleepSegments(ctx context.Context, from, to time.Time) ([]sleep.Segment, error) {
	resp, err := c.aggregate(ctx, aggregateRequest{
		AggregateBy:     []aggregateBy{{DataTypeName: sleepDataType}},
		StartTimeMillis: from.UnixMilli(),
		EndTimeMillis:   to.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	var segments []sleep.Segment
	for _, bucket := range resp.Bucket {
		for _, ds := range bucket.Dataset {
			for _, point := range ds.Point {
				if len(point.Value) == 0 || point.Value[0].IntVal == nil {
					continue
				}
				startNanos, err1 := strconv.ParseInt(point.StartTimeNanos, 10, 64)
				endNanos, err2 := strconv.ParseInt(point.EndTimeNanos, 10, 64)
				if err1 != nil || err2 != nil {
					continue
				}
				label, ok := stageLabels[*point.Value[0].IntVal]
				if !ok {
					continue
				}
				segments = append(segments, sleep.Segment{
					Stage:     label,
					StartTime: time.Unix(0, startNanos).UTC(),
					EndTime:   time.Unix(0, endNanos).UTC(),
				})
			}
		}
	}
	return segments, nil
}

func (c *Client) aggregate(ctx context.Context, reqBody aggregateRequest) (*aggregateResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode aggregate request: %w", err)
	}

	url := c.baseURL + "/users/me/dataset:aggregate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build aggregate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fitness API request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fitness API returned status %d", httpResp.StatusCode)
	}

	var resp aggregateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode fitness API response: %w", err)
	}
	return &resp, nil
}
