package vetting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

const DefaultWhoisTimeout = 10 * time.Second

// ErrNoCreationDate is returned when a record carries no usable creation date.
var ErrNoCreationDate = errors.New("no creation date in registration record")

// RegistrationSource supplies creation-date candidates for a domain.
// Some registries report more than one; the first is authoritative.
type RegistrationSource interface {
	CreationDates(ctx context.Context, domain string) ([]time.Time, error)
}

// AgeFinding is the registration age of a domain. A nil AgeDays means no data.
type AgeFinding struct {
	AgeDays *int `json:"age_days,omitempty"`
}

// AgeProbe turns registration data into an age in days.
type AgeProbe struct {
	Source  RegistrationSource
	Timeout time.Duration
	Now     func() time.Time
}

func NewAgeProbe(src RegistrationSource, timeout time.Duration) *AgeProbe {
	if timeout <= 0 {
		timeout = DefaultWhoisTimeout
	}
	return &AgeProbe{Source: src, Timeout: timeout, Now: time.Now}
}

// Probe never fails: lookup errors, timeouts and missing dates all yield an empty finding.
func (p *AgeProbe) Probe(ctx context.Context, domain string) AgeFinding {
	if domain == "" || p.Source == nil {
		return AgeFinding{}
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultWhoisTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		dates []time.Time
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		dates, err := p.Source.CreationDates(ctx, domain)
		ch <- result{dates, err}
	}()

	var res result
	select {
	case res = <-ch:
	case <-ctx.Done():
		log.Printf("[WHOIS] Lookup for %s timed out", domain)
		return AgeFinding{}
	}

	if res.err != nil {
		log.Printf("[WHOIS] Lookup for %s failed: %v", domain, res.err)
		return AgeFinding{}
	}
	if len(res.dates) == 0 || res.dates[0].IsZero() {
		return AgeFinding{}
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	days := int(math.Floor(now().Sub(res.dates[0]).Hours() / 24))
	return AgeFinding{AgeDays: &days}
}

// WhoisSource looks creation dates up over the WHOIS protocol.
type WhoisSource struct {
	// Server pins every query to one WHOIS server. Empty lets the client
	// discover the registry server through IANA.
	Server string
	client *whois.Client
}

func NewWhoisSource(timeout time.Duration) *WhoisSource {
	if timeout <= 0 {
		timeout = DefaultWhoisTimeout
	}
	c := whois.NewClient()
	c.SetTimeout(timeout)
	return &WhoisSource{client: c}
}

func (s *WhoisSource) CreationDates(ctx context.Context, domain string) ([]time.Time, error) {
	query := domain
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
		query = ascii
	}

	dates, err := s.lookup(ctx, query)
	if err == nil {
		return dates, nil
	}

	// For subdomains, try the registrable domain (e.g. login.example.co.uk -> example.co.uk)
	parent, perr := publicsuffix.EffectiveTLDPlusOne(query)
	if perr != nil || parent == query {
		return nil, err
	}
	log.Printf("[WHOIS] No record for %s, retrying with %s", query, parent)
	return s.lookup(ctx, parent)
}

func (s *WhoisSource) lookup(ctx context.Context, domain string) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var servers []string
	if s.Server != "" {
		servers = append(servers, s.Server)
	}

	raw, err := s.client.Whois(domain, servers...)
	if err != nil {
		return nil, fmt.Errorf("whois %s: %w", domain, err)
	}

	var dates []time.Time
	if info, err := parser.Parse(raw); err == nil && info.Domain != nil {
		if t, ok := parseRegistryDate(info.Domain.CreatedDate); ok {
			dates = append(dates, t)
		}
	}
	for _, t := range rawCreationDates(raw) {
		if !containsTime(dates, t) {
			dates = append(dates, t)
		}
	}

	if len(dates) == 0 {
		return nil, fmt.Errorf("whois %s: %w", domain, ErrNoCreationDate)
	}
	return dates, nil
}

func containsTime(ts []time.Time, t time.Time) bool {
	for _, x := range ts {
		if x.Equal(t) {
			return true
		}
	}
	return false
}

var creationLineRe = regexp.MustCompile(`(?im)^\s*(?:creation date|created|created on|domain registration date|registered on|registration time)\s*:\s*(.+?)\s*$`)

// rawCreationDates collects every parsable creation-date line in document order.
func rawCreationDates(raw string) []time.Time {
	var dates []time.Time
	for _, m := range creationLineRe.FindAllStringSubmatch(raw, -1) {
		if t, ok := parseRegistryDate(m[1]); ok {
			dates = append(dates, t)
		}
	}
	return dates
}

var registryDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"02-Jan-2006 15:04:05 MST",
	"2006.01.02",
	"2006.01.02 15:04:05",
	"2006/01/02",
	"02.01.2006",
	"January 2 2006",
	"Mon Jan 2 15:04:05 MST 2006",
}

func parseRegistryDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range registryDateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
