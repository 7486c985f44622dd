package wordlist

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Download fetches a plain text password list and writes it to out,
// one entry per line with normalized line endings. Returns the number
// of lines written.
func Download(url string, out *os.File) (uint64, error) {
	client := initHTTPClient()

	ctx := context.Background()
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "pwd-strength-fetch/1.0")

	timer := time.Now()
	res, err := client.Do(req)
	if err != nil {
		return 0, err
	}

	defer func(body io.ReadCloser) {
		if err = body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing response body for %s", url)
		}
	}(res.Body)

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("request [%s] failed with status [%d] %s", url, res.StatusCode, res.Status)
	}

	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(res.Body)

	var lines uint64
	for scanner.Scan() {
		if _, err = writer.WriteString(scanner.Text() + "\n"); err != nil {
			return lines, err
		}
		lines++
	}
	if err = scanner.Err(); err != nil {
		return lines, err
	}
	if err = writer.Flush(); err != nil {
		return lines, err
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("downloaded %s list entries to %s in %v", p.Sprintf("%d", lines), out.Name(), time.Since(timer))
	return lines, nil
}

func initHTTPClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// The default retryablehttp logger is too chatty for a single GET.
	client.Logger = nil

	// Retry Max 10 times on protocol errors. Any other are just reported and not retried.
	client.RetryMax = 10

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DisableCompression: false,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS13,
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       10 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return client
}
