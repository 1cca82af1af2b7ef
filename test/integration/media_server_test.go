package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	mediaService "github.com/allisson/mediavault/internal/media/service"
)

type fakeResource struct {
	AssetID      string   `json:"asset_id"`
	PublicID     string   `json:"public_id"`
	ResourceType string   `json:"resource_type"`
	Type         string   `json:"type"`
	Format       string   `json:"format"`
	Version      int64    `json:"version"`
	Bytes        int64    `json:"bytes"`
	URL          string   `json:"url"`
	SecureURL    string   `json:"secure_url"`
	Folder       string   `json:"folder"`
	Tags         []string `json:"tags"`
	Context      struct {
		Custom map[string]string `json:"custom"`
	} `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

// fakeMediaService emulates the subset of the media service API the proxy uses. It
// accepts a single account, checks basic auth on Admin API reads and signatures on
// Upload API writes.
type fakeMediaService struct {
	mu        sync.Mutex
	cloudName string
	apiKey    string
	apiSecret string
	resources map[string]*fakeResource
	requests  int
	server    *httptest.Server
}

func newFakeMediaService(t *testing.T, cloudName, apiKey, apiSecret string) *fakeMediaService {
	t.Helper()

	f := &fakeMediaService{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		resources: map[string]*fakeResource{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeMediaService) URL() string {
	return f.server.URL
}

// Resource returns a copy of the stored resource.
func (f *fakeMediaService) Resource(publicID string) (fakeResource, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.resources[publicID]
	if !ok {
		return fakeResource{}, false
	}
	return *r, true
}

func (f *fakeMediaService) RequestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeMediaService) serveHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	prefix := "/v1_1/" + f.cloudName + "/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		writeFakeError(w, http.StatusNotFound, "unknown cloud")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	if r.Method == http.MethodGet {
		user, pass, ok := r.BasicAuth()
		if !ok || user != f.apiKey || pass != f.apiSecret {
			writeFakeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		f.serveAdmin(w, r, rest)
		return
	}
	if r.Method != http.MethodPost {
		writeFakeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	// Upload API calls authenticate by signature only.
	if r.Header.Get("Authorization") != "" {
		writeFakeError(w, http.StatusBadRequest, "unexpected Authorization header")
		return
	}

	params, ok := f.verifySignature(w, r)
	if !ok {
		return
	}

	category, action, _ := strings.Cut(rest, "/")
	switch action {
	case "upload":
		f.upload(w, r, params)
	case "rename":
		f.rename(w, category, params)
	case "tags":
		f.addTags(w, category, params)
	case "context":
		f.addContext(w, category, params)
	case "destroy":
		f.destroy(w, category, params)
	default:
		writeFakeError(w, http.StatusNotFound, "unknown action")
	}
}

// serveAdmin handles resources/{category}/upload[/{public_id}].
func (f *fakeMediaService) serveAdmin(w http.ResponseWriter, r *http.Request, rest string) {
	parts := strings.SplitN(rest, "/", 4)
	if len(parts) < 3 || parts[0] != "resources" || parts[2] != "upload" {
		writeFakeError(w, http.StatusNotFound, "unknown endpoint")
		return
	}
	category := parts[1]

	if len(parts) == 4 {
		res, ok := f.resources[parts[3]]
		if !ok || res.ResourceType != category {
			writeFakeError(w, http.StatusNotFound, "Resource not found - "+parts[3])
			return
		}
		writeFakeJSON(w, http.StatusOK, res)
		return
	}

	prefix := r.URL.Query().Get("prefix")
	ids := make([]string, 0, len(f.resources))
	for id, res := range f.resources {
		if res.ResourceType == category && strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	resources := make([]*fakeResource, 0, len(ids))
	for _, id := range ids {
		resources = append(resources, f.resources[id])
	}
	writeFakeJSON(w, http.StatusOK, map[string]any{
		"resources":   resources,
		"total_count": len(resources),
	})
}

func (f *fakeMediaService) verifySignature(w http.ResponseWriter, r *http.Request) (url.Values, bool) {
	var params url.Values
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			writeFakeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		params = url.Values(r.MultipartForm.Value)
	} else {
		if err := r.ParseForm(); err != nil {
			writeFakeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		params = r.PostForm
	}

	if params.Get("api_key") != f.apiKey ||
		params.Get("timestamp") == "" ||
		params.Get("signature") != mediaService.Signature(params, f.apiSecret) {
		writeFakeError(w, http.StatusUnauthorized, "invalid signature")
		return nil, false
	}
	return params, true
}

func (f *fakeMediaService) upload(w http.ResponseWriter, r *http.Request, params url.Values) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeFakeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.TrimPrefix(path.Ext(header.Filename), ".")
	category := "image"
	switch ext {
	case "txt":
		category = "raw"
	case "mp4":
		category = "video"
	}

	name := params.Get("public_id")
	if name == "" {
		name = strings.TrimSuffix(header.Filename, path.Ext(header.Filename))
	}
	publicID := name
	folder := params.Get("folder")
	if folder != "" {
		publicID = folder + "/" + name
	}

	res := &fakeResource{
		AssetID:      fmt.Sprintf("asset-%d", len(f.resources)+1),
		PublicID:     publicID,
		ResourceType: category,
		Type:         "upload",
		Format:       ext,
		Version:      1,
		Bytes:        header.Size,
		Folder:       folder,
		Tags:         []string{},
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if tags := params.Get("tags"); tags != "" {
		res.Tags = strings.Split(tags, ",")
	}
	res.URL = fmt.Sprintf("http://media.test/%s/%s/upload/%s", f.cloudName, category, publicID)
	res.SecureURL = strings.Replace(res.URL, "http://", "https://", 1)

	f.resources[publicID] = res
	writeFakeJSON(w, http.StatusOK, res)
}

func (f *fakeMediaService) lookup(w http.ResponseWriter, category, publicID string) (*fakeResource, bool) {
	res, ok := f.resources[publicID]
	if !ok || res.ResourceType != category {
		writeFakeError(w, http.StatusNotFound, "Resource not found - "+publicID)
		return nil, false
	}
	return res, true
}

func (f *fakeMediaService) rename(w http.ResponseWriter, category string, params url.Values) {
	res, ok := f.lookup(w, category, params.Get("from_public_id"))
	if !ok {
		return
	}

	to := params.Get("to_public_id")
	delete(f.resources, res.PublicID)
	res.PublicID = to
	f.resources[to] = res
	writeFakeJSON(w, http.StatusOK, res)
}

func (f *fakeMediaService) addTags(w http.ResponseWriter, category string, params url.Values) {
	res, ok := f.lookup(w, category, params.Get("public_ids[]"))
	if !ok {
		return
	}

	res.Tags = append(res.Tags, strings.Split(params.Get("tag"), ",")...)
	writeFakeJSON(w, http.StatusOK, map[string]any{"public_ids": []string{res.PublicID}})
}

func (f *fakeMediaService) addContext(w http.ResponseWriter, category string, params url.Values) {
	res, ok := f.lookup(w, category, params.Get("public_ids[]"))
	if !ok {
		return
	}

	if res.Context.Custom == nil {
		res.Context.Custom = map[string]string{}
	}
	for _, pair := range strings.Split(params.Get("context"), "|") {
		key, value, _ := strings.Cut(pair, "=")
		res.Context.Custom[key] = value
	}
	writeFakeJSON(w, http.StatusOK, map[string]any{"public_ids": []string{res.PublicID}})
}

func (f *fakeMediaService) destroy(w http.ResponseWriter, category string, params url.Values) {
	publicID := params.Get("public_id")
	res, ok := f.resources[publicID]
	if !ok || res.ResourceType != category {
		writeFakeJSON(w, http.StatusOK, map[string]string{"result": mediaService.DestroyResultNotFound})
		return
	}

	delete(f.resources, publicID)
	writeFakeJSON(w, http.StatusOK, map[string]string{"result": mediaService.DestroyResultOK})
}

func writeFakeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFakeError(w http.ResponseWriter, status int, message string) {
	writeFakeJSON(w, status, map[string]any{"error": map[string]string{"message": message}})
}
