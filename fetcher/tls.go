package fetcher

import (
	"context"
	"crypto/x509"
	"fmt"
	"net"
	"time"

	tls "github.com/refraction-networking/utls"
)

// chromeDialer opens TLS connections whose ClientHello looks like Chrome's.
type chromeDialer struct {
	dialer net.Dialer
	roots  *x509.CertPool // nil: system roots
}

func newChromeDialer(roots *x509.CertPool) *chromeDialer {
	return &chromeDialer{
		dialer: net.Dialer{Timeout: 10 * time.Second},
		roots:  roots,
	}
}

// chromeHelloSpec returns a fresh Chrome ClientHello offering only http/1.1.
// Specs hold per-connection state (key shares, GREASE), so they are never
// shared between handshakes.
func chromeHelloSpec() (*tls.ClientHelloSpec, error) {
	spec, err := tls.UTLSIdToSpec(tls.HelloChrome_Auto)
	if err != nil {
		return nil, err
	}
	// http.Transport cannot speak h2 over a utls connection.
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*tls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}
	return &spec, nil
}

// DialTLSContext matches http.Transport.DialTLSContext.
func (d *chromeDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	spec, err := chromeHelloSpec()
	if err != nil {
		return nil, fmt.Errorf("fetcher: chrome hello spec: %w", err)
	}

	conn, err := d.dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	tlsConn := tls.UClient(conn, &tls.Config{ServerName: host, RootCAs: d.roots}, tls.HelloCustom)
	if err := tlsConn.ApplyPreset(spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("fetcher: apply tls spec: %w", err)
	}
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}
