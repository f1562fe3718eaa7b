// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// maxBody caps the size of any response read from the website.
const maxBody = 4 << 20

// StatusError reports a response with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Client talks to the puzzle website on behalf of one session.
type Client struct {
	http    *http.Client
	base    string
	year    int
	session string
}

// NewClient returns a client for the given event year.
func NewClient(baseURL string, year int, session string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		base:    strings.TrimSuffix(baseURL, "/"),
		year:    year,
		session: session,
	}
}

func (c *Client) dayURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d", c.base, c.year, day)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.session == "" {
		return nil, ErrNoSession
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	req.Header.Set("User-Agent", "code.hybscloud.com/parsex aoc runner")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: req.URL.String(), Code: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.URL, err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// Input downloads the puzzle input of day.
func (c *Client) Input(ctx context.Context, day int) ([]byte, error) {
	return c.get(ctx, c.dayURL(day)+"/input")
}

// Description downloads the puzzle page of day and renders every
// description article as Markdown.
func (c *Client) Description(ctx context.Context, day int) (string, error) {
	body, err := c.get(ctx, c.dayURL(day))
	if err != nil {
		return "", err
	}
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to parse day %d page: %w", day, err)
	}

	var sb strings.Builder
	for _, article := range findAll(doc, isDayDesc) {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(markdown(article))
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("day %d page has no puzzle description", day)
	}
	return sb.String() + "\n", nil
}

// Submit posts answer for the given level of day and classifies the reply.
func (c *Client) Submit(ctx context.Context, day, level, answer int) (Verdict, error) {
	form := url.Values{
		"level":  {strconv.Itoa(level)},
		"answer": {strconv.Itoa(answer)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.dayURL(day)+"/answer",
		strings.NewReader(form.Encode()))
	if err != nil {
		return Unknown, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return Unknown, err
	}
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return Unknown, fmt.Errorf("failed to parse answer page: %w", err)
	}
	articles := findAll(doc, func(n *html.Node) bool { return isElement(n, "article") })
	if len(articles) == 0 {
		return Unknown, nil
	}
	return ClassifyVerdict(plainText(articles[0])), nil
}
