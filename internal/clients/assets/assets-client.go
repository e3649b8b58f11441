package assets_client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/init-pkg/cinecheck/domain/app"
	"github.com/init-pkg/cinecheck/internal/config"
)

// AssetsClient reads files relative to the asset root, which is either a
// local directory or an http(s) origin.
type AssetsClient struct {
	root   string
	client *http.Client
}

var _ app.AssetFetcher = &AssetsClient{}

func New(cfg *config.Config) *AssetsClient {
	client := &http.Client{
		Timeout: cfg.Catalog.FetchTimeout,
	}

	return &AssetsClient{
		root:   cfg.Catalog.AssetRoot,
		client: client,
	}
}

// Fetch resolves ref against the asset root. Local refs must stay inside the
// root directory; http refs are only accepted when the root is an http origin
// and the resolved URL stays under it.
func (this *AssetsClient) Fetch(ctx context.Context, ref string) (string, []byte, error) {
	if isHttp(this.root) {
		target, err := this.resolveURL(ref)
		if err != nil {
			return "", nil, &app.FetchError{Ref: ref, Err: err}
		}
		return this.get(ctx, target)
	}

	if isHttp(ref) || !filepath.IsLocal(ref) {
		return "", nil, &app.FetchError{Ref: ref, Err: app.ErrOutsideAssetRoot}
	}

	f, err := os.OpenInRoot(this.root, ref)
	if err != nil {
		return "", nil, &app.FetchError{Ref: ref, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, &app.FetchError{Ref: ref, Err: err}
	}

	return filepath.Base(ref), data, nil
}

func (this *AssetsClient) resolveURL(ref string) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(this.root, "/") + "/")
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", err
	}

	target := base.ResolveReference(rel)
	inside := strings.HasPrefix(path.Clean(target.Path)+"/", base.Path)
	if target.Scheme != base.Scheme || target.Host != base.Host || !inside {
		return "", app.ErrOutsideAssetRoot
	}

	return target.String(), nil
}

func (this *AssetsClient) get(ctx context.Context, rawURL string) (string, []byte, error) {
	req, e := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if e != nil {
		return "", nil, &app.FetchError{Ref: rawURL, Err: e}
	}

	res, e := this.client.Do(req)
	if e != nil {
		return "", nil, &app.FetchError{Ref: rawURL, Err: e}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return "", nil, &app.FetchError{Ref: rawURL, Status: res.StatusCode, Err: fmt.Errorf("unexpected status %s", res.Status)}
	}

	data, e := io.ReadAll(res.Body)
	if e != nil {
		return "", nil, &app.FetchError{Ref: rawURL, Err: e}
	}

	return path.Base(req.URL.Path), data, nil
}

func isHttp(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
