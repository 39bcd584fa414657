package vetting

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log"
	"net"
	"time"

	"golang.org/x/net/idna"
)

// CertExpiryLayout matches the notAfter text produced by OpenSSL-style certificate dumps.
const CertExpiryLayout = "Jan _2 15:04:05 2006 GMT"

const (
	DefaultTLSPort    = "443"
	DefaultTLSTimeout = 5 * time.Second
)

// TLSFinding reports whether a verified handshake succeeded.
// Expiry is empty whenever Valid is false.
type TLSFinding struct {
	Valid  bool   `json:"valid"`
	Expiry string `json:"expiry,omitempty"`
}

// TLSProbe performs a single verified handshake against a host.
type TLSProbe struct {
	Port    string
	Timeout time.Duration
	// RootCAs overrides the system trust store when set.
	RootCAs *x509.CertPool
	// Dial replaces the TCP dialer when set.
	Dial func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewTLSProbe(timeout time.Duration) *TLSProbe {
	if timeout <= 0 {
		timeout = DefaultTLSTimeout
	}
	return &TLSProbe{Port: DefaultTLSPort, Timeout: timeout}
}

// Probe dials domain:443 with SNI set to domain. Internationalized names are
// converted to their ASCII form first. Any failure yields an invalid finding.
func (p *TLSProbe) Probe(ctx context.Context, domain string) TLSFinding {
	if domain == "" {
		return TLSFinding{}
	}

	host := domain
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
		host = ascii
	}

	port := p.Port
	if port == "" {
		port = DefaultTLSPort
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTLSTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dial := p.Dial
	if dial == nil {
		dial = (&net.Dialer{Timeout: timeout}).DialContext
	}

	raw, err := dial(ctx, "tcp", net.JoinHostPort(host, port))
	if err != nil {
		log.Printf("[TLS] Connecting to %s failed: %v", host, err)
		return TLSFinding{}
	}

	conn := tls.Client(raw, &tls.Config{
		ServerName: host,
		RootCAs:    p.RootCAs,
	})
	defer conn.Close()

	if err := conn.HandshakeContext(ctx); err != nil {
		log.Printf("[TLS] Handshake with %s failed: %v", host, err)
		return TLSFinding{}
	}

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return TLSFinding{}
	}

	return TLSFinding{
		Valid:  true,
		Expiry: certs[0].NotAfter.UTC().Format(CertExpiryLayout),
	}
}
