package services

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type ProbeResult struct {
	Status int
	Body   string
}

// ProviderProbe checks that the provider's base endpoint answers.
type ProviderProbe interface {
	Probe() (*ProbeResult, error)
}

type providerProbe struct {
	url     string
	timeout time.Duration
}

func NewProviderProbe(url string, timeout time.Duration) ProviderProbe {
	return &providerProbe{url: url, timeout: timeout}
}

// Probe implements ProviderProbe. Any HTTP status counts as a response.
func (p *providerProbe) Probe() (*ProbeResult, error) {
	agent := fiber.Get(p.url)
	if p.timeout > 0 {
		agent.Timeout(p.timeout)
	}

	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("probe %s: %w", p.url, err)
	}

	code, body, errs := agent.String()
	if len(errs) > 0 {
		return nil, fmt.Errorf("probe %s: %w", p.url, errs[0])
	}

	return &ProbeResult{Status: code, Body: body}, nil
}
