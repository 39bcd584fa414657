package vetting

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultAnalyzeTimeout = 15 * time.Second

// ErrNoURL is returned when the submitted URL is empty after trimming.
var ErrNoURL = errors.New("no URL provided")

type TLSProber interface {
	Probe(ctx context.Context, domain string) TLSFinding
}

type AgeProber interface {
	Probe(ctx context.Context, domain string) AgeFinding
}

// Analyzer runs the probes for one URL and scores the result.
// It holds no per-request state and is safe for concurrent use.
type Analyzer struct {
	TLS     TLSProber
	Age     AgeProber
	Timeout time.Duration
}

// AnalyzerOptions configures NewAnalyzer. Zero values select the defaults.
type AnalyzerOptions struct {
	TLSTimeout     time.Duration
	WhoisTimeout   time.Duration
	AnalyzeTimeout time.Duration
}

// NewAnalyzer wires the live TLS and WHOIS probes.
func NewAnalyzer(opts AnalyzerOptions) *Analyzer {
	return &Analyzer{
		TLS:     NewTLSProbe(opts.TLSTimeout),
		Age:     NewAgeProbe(NewWhoisSource(opts.WhoisTimeout), opts.WhoisTimeout),
		Timeout: opts.AnalyzeTimeout,
	}
}

// Analyze normalizes rawURL, runs the TLS, age and pattern checks concurrently
// and aggregates them. The only error is ErrNoURL; probe failures lower the
// quality of the signal, never the shape of the report.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (RiskReport, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return RiskReport{}, ErrNoURL
	}

	domain := NormalizeDomain(rawURL)

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultAnalyzeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		tlsF     TLSFinding
		ageF     AgeFinding
		patterns PatternFinding
	)

	g, gctx := errgroup.WithContext(ctx)

	// TLS
	g.Go(func() error {
		if a.TLS != nil {
			tlsF = a.TLS.Probe(gctx, domain)
		}
		return nil
	})

	// WHOIS
	g.Go(func() error {
		if a.Age != nil {
			ageF = a.Age.Probe(gctx, domain)
		}
		return nil
	})

	// Patterns
	g.Go(func() error {
		patterns = AnalyzePatterns(domain)
		return nil
	})

	_ = g.Wait()

	report := Aggregate(tlsF, ageF, patterns)
	log.Printf("[Analyze] %s -> %d (%s)", domain, report.Risk, report.Level)
	return report, nil
}
