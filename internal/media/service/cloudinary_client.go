package service

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/allisson/mediavault/internal/errors"
	mediaDomain "github.com/allisson/mediavault/internal/media/domain"
)

const (
	apiVersionPrefix = "/v1_1/"
	deliveryType     = "upload"
	maxErrorBody     = 64 << 10
)

// Destroy results reported by the media service.
const (
	DestroyResultOK       = "ok"
	DestroyResultNotFound = "not found"
)

// CloudinaryClient implements Client over the Cloudinary REST API. Admin API calls use
// basic authentication; Upload API calls are signed with the account secret and carry
// no Authorization header.
type CloudinaryClient struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// NewCloudinaryClient creates a client for the API rooted at baseURL. Every request is
// bounded by timeout in addition to the caller's context.
func NewCloudinaryClient(baseURL string, timeout time.Duration) *CloudinaryClient {
	return &CloudinaryClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type resourceResponse struct {
	AssetID      string   `json:"asset_id"`
	PublicID     string   `json:"public_id"`
	ResourceType string   `json:"resource_type"`
	Type         string   `json:"type"`
	Format       string   `json:"format"`
	Version      int64    `json:"version"`
	Bytes        int64    `json:"bytes"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	URL          string   `json:"url"`
	SecureURL    string   `json:"secure_url"`
	Folder       string   `json:"folder"`
	Tags         []string `json:"tags"`
	Context      struct {
		Custom map[string]string `json:"custom"`
	} `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

func (r resourceResponse) toDomain() mediaDomain.Asset {
	return mediaDomain.Asset{
		AssetID:   r.AssetID,
		PublicID:  r.PublicID,
		Category:  mediaDomain.Category(r.ResourceType),
		Type:      r.Type,
		Format:    r.Format,
		Version:   r.Version,
		Bytes:     r.Bytes,
		Width:     r.Width,
		Height:    r.Height,
		URL:       r.URL,
		SecureURL: r.SecureURL,
		Folder:    r.Folder,
		Tags:      r.Tags,
		Context:   r.Context.Custom,
		CreatedAt: r.CreatedAt,
	}
}

type listResponse struct {
	Resources  []resourceResponse `json:"resources"`
	NextCursor string             `json:"next_cursor"`
	TotalCount *int               `json:"total_count"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Probe looks the asset up through the Admin API under a single category. A 404 is the
// only answer read as "not in this category".
func (c *CloudinaryClient) Probe(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	publicID string,
	category mediaDomain.Category,
) (mediaDomain.ProbeResult, error) {
	path := c.adminPath(cfg, "resources", string(category), deliveryType) + "/" + escapePublicID(publicID)

	err := c.adminGet(ctx, cfg, path, nil)
	switch {
	case err == nil:
		return mediaDomain.ProbeMatched, nil
	case apperrors.Is(err, mediaDomain.ErrAssetNotFound):
		return mediaDomain.ProbeNotInCategory, nil
	default:
		return mediaDomain.ProbeNotInCategory, err
	}
}

// ListResources returns a page of uploaded assets under input.Category.
func (c *CloudinaryClient) ListResources(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	input mediaDomain.ListAssetsInput,
) (*mediaDomain.AssetPage, error) {
	q := url.Values{}
	q.Set("max_results", strconv.Itoa(input.MaxResults))
	if input.Prefix != "" {
		q.Set("prefix", input.Prefix)
	}
	if input.NextCursor != "" {
		q.Set("next_cursor", input.NextCursor)
	}
	path := c.adminPath(cfg, "resources", string(input.Category), deliveryType) + "?" + q.Encode()

	var out listResponse
	if err := c.adminGet(ctx, cfg, path, &out); err != nil {
		return nil, err
	}

	page := &mediaDomain.AssetPage{
		Resources:  make([]mediaDomain.Asset, 0, len(out.Resources)),
		NextCursor: out.NextCursor,
		TotalCount: len(out.Resources),
	}
	if out.TotalCount != nil {
		page.TotalCount = *out.TotalCount
	}
	for _, r := range out.Resources {
		page.Resources = append(page.Resources, r.toDomain())
	}
	return page, nil
}

// Upload sends a file through the signed Upload API and lets the service pick the category.
func (c *CloudinaryClient) Upload(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	input mediaDomain.UploadAssetInput,
) (*mediaDomain.Asset, error) {
	params := url.Values{}
	if input.Folder != "" {
		params.Set("folder", input.Folder)
	}
	if input.PublicID != "" {
		params.Set("public_id", input.PublicID)
	}
	if len(input.Tags) > 0 {
		params.Set("tags", strings.Join(input.Tags, ","))
	}
	c.sign(cfg, params)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, key := range sortedKeys(params) {
		if err := writer.WriteField(key, params.Get(key)); err != nil {
			return nil, apperrors.Wrap(err, "failed to build upload request")
		}
	}
	filename := input.Filename
	if filename == "" {
		filename = "file"
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build upload request")
	}
	if _, err := io.Copy(part, input.File); err != nil {
		return nil, apperrors.Wrap(err, "failed to read upload file")
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.Wrap(err, "failed to build upload request")
	}

	path := c.uploadPath(cfg, string(mediaDomain.CategoryAuto), "upload")

	var out resourceResponse
	if err := c.do(ctx, http.MethodPost, path, &body, writer.FormDataContentType(), nil, &out); err != nil {
		return nil, err
	}
	asset := out.toDomain()
	return &asset, nil
}

// Rename changes the public id of an asset.
func (c *CloudinaryClient) Rename(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	fromPublicID, toPublicID string,
) (*mediaDomain.Asset, error) {
	params := url.Values{}
	params.Set("from_public_id", fromPublicID)
	params.Set("to_public_id", toPublicID)

	var out resourceResponse
	if err := c.postSigned(ctx, cfg, category, "rename", params, &out); err != nil {
		return nil, err
	}
	asset := out.toDomain()
	return &asset, nil
}

// AddTags attaches tags to an asset.
func (c *CloudinaryClient) AddTags(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	publicID string,
	tags []string,
) error {
	params := url.Values{}
	params.Set("command", "add")
	params.Set("tag", strings.Join(tags, ","))
	params.Add("public_ids[]", publicID)
	return c.postSigned(ctx, cfg, category, "tags", params, nil)
}

// AddContext attaches key/value context metadata to an asset.
func (c *CloudinaryClient) AddContext(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	publicID string,
	values map[string]string,
) error {
	pairs := make([]string, 0, len(values))
	for key, value := range values {
		pairs = append(pairs, escapeContext(key)+"="+escapeContext(value))
	}
	sort.Strings(pairs)

	params := url.Values{}
	params.Set("command", "add")
	params.Set("context", strings.Join(pairs, "|"))
	params.Add("public_ids[]", publicID)
	return c.postSigned(ctx, cfg, category, "context", params, nil)
}

// Destroy deletes an asset. A missing asset is reported through the result string,
// not as an error.
func (c *CloudinaryClient) Destroy(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	publicID string,
) (string, error) {
	params := url.Values{}
	params.Set("public_id", publicID)

	var out destroyResponse
	if err := c.postSigned(ctx, cfg, category, "destroy", params, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

func (c *CloudinaryClient) postSigned(
	ctx context.Context,
	cfg mediaDomain.ClientConfig,
	category mediaDomain.Category,
	action string,
	params url.Values,
	out any,
) error {
	c.sign(cfg, params)
	body := strings.NewReader(params.Encode())
	path := c.uploadPath(cfg, string(category), action)
	return c.do(ctx, http.MethodPost, path, body, "application/x-www-form-urlencoded", nil, out)
}

// adminGet issues an Admin API read authenticated with the account key and secret.
func (c *CloudinaryClient) adminGet(ctx context.Context, cfg mediaDomain.ClientConfig, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", &cfg, out)
}

func (c *CloudinaryClient) adminPath(cfg mediaDomain.ClientConfig, segments ...string) string {
	return apiVersionPrefix + url.PathEscape(cfg.CloudName) + "/" + strings.Join(segments, "/")
}

func (c *CloudinaryClient) uploadPath(cfg mediaDomain.ClientConfig, category, action string) string {
	return apiVersionPrefix + url.PathEscape(cfg.CloudName) + "/" + category + "/" + action
}

// sign adds api_key, timestamp and signature to params.
func (c *CloudinaryClient) sign(cfg mediaDomain.ClientConfig, params url.Values) {
	params.Set("timestamp", strconv.FormatInt(c.now().Unix(), 10))
	params.Set("signature", Signature(params, cfg.APISecret))
	params.Set("api_key", cfg.APIKey)
}

// Signature computes the Upload API signature: the sorted "key=value" pairs joined by
// "&" followed by the secret, hashed with SHA-1. Array parameters are signed by their
// base name with comma-joined values.
func Signature(params url.Values, secret string) string {
	signed := map[string]string{}
	for key, values := range params {
		switch key {
		case "file", "api_key", "resource_type", "cloud_name", "signature":
			continue
		}
		joined := strings.Join(values, ",")
		if joined == "" {
			continue
		}
		signed[strings.TrimSuffix(key, "[]")] = joined
	}

	keys := make([]string, 0, len(signed))
	for key := range signed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+signed[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

// do sends one request. Basic authentication is added only when basicAuth is set.
func (c *CloudinaryClient) do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
	basicAuth *mediaDomain.ClientConfig,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(err, "failed to build media service request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if basicAuth != nil {
		req.SetBasicAuth(basicAuth.APIKey, basicAuth.APISecret)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(resp.StatusCode, b)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", mediaDomain.ErrMediaRejected, err)
	}
	return nil
}

// classifyTransportError maps a failed round trip to a retryable error kind.
func classifyTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: request timed out: %w", mediaDomain.ErrMediaUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", mediaDomain.ErrMediaUnavailable, err)
	}
}

// classifyStatus maps a non-2xx response to the error taxonomy.
func classifyStatus(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var apiErr apiErrorResponse
	if len(body) > 0 && json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", mediaDomain.ErrAssetNotFound, message)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: status=%d: %s", mediaDomain.ErrMediaCredentials, status, message)
	case status == http.StatusTooManyRequests || status == 420 || status >= 500:
		return fmt.Errorf("%w: status=%d: %s", mediaDomain.ErrMediaUnavailable, status, message)
	default:
		return fmt.Errorf("%w: status=%d: %s", mediaDomain.ErrMediaRejected, status, message)
	}
}

func escapePublicID(publicID string) string {
	segments := strings.Split(publicID, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// escapeContext escapes the separators of the context parameter.
func escapeContext(s string) string {
	return strings.NewReplacer("=", `\=`, "|", `\|`).Replace(s)
}

func sortedKeys(values url.Values) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
