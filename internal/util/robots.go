package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker consults robots.txt before a page fetch. Parsed rules are
// cached per host. An unreachable robots.txt allows the fetch, since most
// small sites simply do not publish one.
type RobotsChecker struct {
	mu        sync.RWMutex
	byHost    map[string]*robotstxt.RobotsData
	client    *http.Client
	userAgent string
}

func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		byHost:    make(map[string]*robotstxt.RobotsData),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// CanFetch reports whether rawURL may be fetched and the crawl delay the
// site requests for this agent.
func (r *RobotsChecker) CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, 0, fmt.Errorf("parse URL: %w", err)
	}

	rules, err := r.rulesFor(ctx, parsed)
	if err != nil {
		return true, 0, nil
	}

	allowed := rules.TestAgent(parsed.Path, r.userAgent)

	var delay time.Duration
	if group := rules.FindGroup(r.userAgent); group != nil {
		delay = group.CrawlDelay
	}
	return allowed, delay, nil
}

func (r *RobotsChecker) rulesFor(ctx context.Context, page *url.URL) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	rules, ok := r.byHost[page.Host]
	r.mu.RUnlock()
	if ok {
		return rules, nil
	}

	robotsURL := page.Scheme + "://" + page.Host + "/robots.txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var parseErr error
	if resp.StatusCode == http.StatusNotFound {
		// no robots.txt means everything is allowed
		rules, parseErr = robotstxt.FromStatusAndBytes(http.StatusNotFound, nil)
	} else {
		rules, parseErr = robotstxt.FromResponse(resp)
	}
	if parseErr != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", parseErr)
	}

	r.mu.Lock()
	r.byHost[page.Host] = rules
	r.mu.Unlock()
	return rules, nil
}

// Clear drops all cached rules.
func (r *RobotsChecker) Clear() {
	r.mu.Lock()
	r.byHost = make(map[string]*robotstxt.RobotsData)
	r.mu.Unlock()
}

// NormalizeUserAgent strips a user agent down to the product name that
// robots.txt groups match against.
func NormalizeUserAgent(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return ua
	}
	return strings.Split(fields[0], "/")[0]
}
