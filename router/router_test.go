package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"productlib/config"
	dbpkg "productlib/db"
	"productlib/models"
	"productlib/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	engine *gin.Engine
	store  *store.Store
	conf   config.Configuration
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	conf := config.Configuration{
		Database:     "sqlite3",
		DbPath:       ":memory:",
		StaticDir:    filepath.Join(dir, "static"),
		StaticPrefix: "/static/",
		ImagePrefix:  "images/",
		ExportDir:    filepath.Join(dir, "exports"),
		CorsOrigins:  []string{"*"},
	}
	require.NoError(t, os.MkdirAll(filepath.Join(conf.StaticDir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(conf.StaticDir, "images", "m.png"), []byte("png"), 0o644))

	database, err := dbpkg.Connect(conf, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, dbpkg.Migrate(database))

	r := gin.New()
	Initialize(r, conf, database, zap.NewNop())
	return &testServer{engine: r, store: store.New(database), conf: conf}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) upload(t *testing.T, filename string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(t, req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *testServer) seed(t *testing.T) {
	t.Helper()
	for _, m := range []models.Module{
		{Title: "结构", ImageURL: "images/m.png", Industry: "航空", Subject: "结构仿真模块"},
		{Title: "流体", ImageURL: "", Industry: "船舶", Subject: "流体仿真模块"},
		{Title: "声学", ImageURL: "images/a.png", Industry: "航空", Subject: "结构仿真模块"},
		{Title: "未分类", Industry: "", Subject: ""},
	} {
		require.NoError(t, s.store.InsertModule(&m))
	}
	require.NoError(t, s.store.InsertPartner(&models.Partner{Name: "HUAWEI", LogoURL: "images/partners/huawei.png"}))
	require.NoError(t, s.store.InsertCase(&models.Case{ImageURL: "images/cases/case1.jpg", Case: "航空发动机振动分析", Value: "成功案例"}))
	require.NoError(t, s.store.InsertClient(&models.Client{Type: "合作单位", Name: "Example Corp", Value: "Key Client"}))
}

func TestGetProductsRendersURLs(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.get(t, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	decode(t, w, &products)
	require.Len(t, products, 4)
	assert.Equal(t, "/static/images/m.png", products[0]["image_url"])
	assert.Equal(t, "", products[1]["image_url"])

	// stored value keeps the bare relative path
	m, err := s.store.FindModule(1)
	require.NoError(t, err)
	assert.Equal(t, "images/m.png", m.ImageURL)
}

func TestGetProductsFilters(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.get(t, "/api/products?industry="+url.QueryEscape("航空"))
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]interface{}
	decode(t, w, &products)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "航空", p["industry"])
	}

	w = s.get(t, "/api/products?industry="+url.QueryEscape("船舶")+"&subject="+url.QueryEscape("结构仿真模块"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetProductByID(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.get(t, "/api/products/1")
	require.Equal(t, http.StatusOK, w.Code)
	var product map[string]interface{}
	decode(t, w, &product)
	assert.Equal(t, "结构", product["title"])
	assert.Equal(t, "/static/images/m.png", product["image_url"])

	w = s.get(t, "/api/products/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "module not found"}`, w.Body.String())

	w = s.get(t, "/api/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIndustriesAndModules(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.get(t, "/api/industries")
	require.Equal(t, http.StatusOK, w.Code)
	var industries []map[string]string
	decode(t, w, &industries)
	assert.ElementsMatch(t, []map[string]string{{"name": "航空"}, {"name": "船舶"}}, industries)

	w = s.get(t, "/api/modules")
	require.Equal(t, http.StatusOK, w.Code)
	var subjects []map[string]string
	decode(t, w, &subjects)
	assert.ElementsMatch(t, []map[string]string{{"name": "结构仿真模块"}, {"name": "流体仿真模块"}}, subjects)
}

func TestGetCasesAndPartners(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.get(t, "/api/cases")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"image_url":"/static/images/cases/case1.jpg","case":"航空发动机振动分析","value":"成功案例"}]`, w.Body.String())

	w = s.get(t, "/api/partners")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"HUAWEI","logo_url":"/static/images/partners/huawei.png"}]`, w.Body.String())
}

func TestEmptyListsAreArrays(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/products", "/api/industries", "/api/modules", "/api/cases", "/api/partners"} {
		w := s.get(t, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
}

func TestFixedPayloads(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/api/banner")
	require.Equal(t, http.StatusOK, w.Code)
	var banner models.Banner
	decode(t, w, &banner)
	assert.Equal(t, models.BANNER_TITLE, banner.Title)
	assert.Equal(t, "/static/banner.jpg", banner.Img)

	w = s.get(t, "/api/footer")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"成功","version":"v`+config.Version+`"}`, w.Body.String())

	w = s.get(t, "/health")
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	w = s.get(t, "/")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticFilesAndRequestID(t *testing.T) {
	s := newTestServer(t)

	w := s.get(t, "/static/images/m.png")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = s.do(t, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestImportReplacesCatalog(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.upload(t, "catalog.json", []byte(`{
		"modules": [{"id": 1, "title": "新模块", "image_url": "images/n.png", "industry": "汽车", "subject": "S"}],
		"clients": [{"id": 1, "type": "t", "name": "n", "value": "v"}]
	}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"数据导入成功","filename":"catalog.json"}`, w.Body.String())

	w = s.get(t, "/api/products")
	assert.JSONEq(t, `[{"id":1,"title":"新模块","description":"","image_url":"/static/images/n.png","industry":"汽车","subject":"S"}]`, w.Body.String())
	w = s.get(t, "/api/partners")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestImportRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.upload(t, "catalog.txt", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Only JSON files are allowed"}`, w.Body.String())

	w = s.upload(t, "catalog.json", []byte(`{"modules": [`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON format"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/import", nil)
	w = s.do(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	n, err := s.store.Count(store.KindModule)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestImportFailureLeavesStoreUnchanged(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.upload(t, "catalog.json", []byte(`{"modules": [
		{"id": 1, "title": "a"}, {"id": 2, "title": "b"}, {"id": 1, "title": "c"}
	]}`))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Contains(t, body["error"], "Import failed: ")

	n, err := s.store.Count(store.KindModule)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = s.store.Count(store.KindPartner)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEnginesKeepTheirOwnConfiguration(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	assetsConf := s.conf
	assetsConf.StaticPrefix = "/assets/"
	database, err := dbpkg.Connect(assetsConf, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, dbpkg.Migrate(database))
	require.NoError(t, store.New(database).InsertPartner(&models.Partner{Name: "HUAWEI", LogoURL: "images/partners/huawei.png"}))
	assets := gin.New()
	Initialize(assets, assetsConf, database, zap.NewNop())

	w := httptest.NewRecorder()
	assets.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/partners", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"HUAWEI","logo_url":"/assets/images/partners/huawei.png"}]`, w.Body.String())

	w = s.get(t, "/api/partners")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"HUAWEI","logo_url":"/static/images/partners/huawei.png"}]`, w.Body.String())
}

func TestImportUntitledModuleIsRejected(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	w := s.upload(t, "catalog.json", []byte(`{"modules": [
		{"title": "x"}, {"title": "y"}, {"description": "no title"}
	]}`))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Contains(t, body["error"], "module title is required")

	n, err := s.store.Count(store.KindModule)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestExportThenImportRoundTrip(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)
	before := s.get(t, "/api/products").Body.String()

	w := s.get(t, "/api/export")
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Code     int    `json:"code"`
		Msg      string `json:"msg"`
		Filename string `json:"filename"`
	}
	decode(t, w, &result)
	assert.Equal(t, 200, result.Code)
	assert.Regexp(t, `^product_library_export_\d{8}_\d{6}\.json$`, result.Filename)

	raw, err := os.ReadFile(filepath.Join(s.conf.ExportDir, result.Filename))
	require.NoError(t, err)

	w = s.upload(t, result.Filename, raw)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.JSONEq(t, before, s.get(t, "/api/products").Body.String())
}
