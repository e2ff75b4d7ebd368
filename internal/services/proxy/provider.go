package proxy

import "paygate/internal/models"

// Provider describes one upstream payment processor.
type Provider struct {
	// Name tags integration log rows.
	Name string
	// Route is the inbound path segment and the rate limiter scope.
	Route string
	// CredentialTable holds the per-merchant secrets for this processor.
	CredentialTable string
	// DefaultBaseURL is used when a merchant's credentials carry no api_url override.
	DefaultBaseURL string
}

var (
	CBDC = Provider{
		Name:            "cbdc",
		Route:           "cbdc-proxy",
		CredentialTable: models.CBDCCredentialTable,
		DefaultBaseURL:  "https://api.cbdc.example.com/v1",
	}
	WiPay = Provider{
		Name:            "wipay",
		Route:           "wipay-proxy",
		CredentialTable: models.WiPayCredentialTable,
		DefaultBaseURL:  "https://api.wipayfinancial.com/v1",
	}
)

// WithBaseURL returns a copy of p pointing at another default base URL.
func (p Provider) WithBaseURL(url string) Provider {
	if url != "" {
		p.DefaultBaseURL = url
	}
	return p
}
