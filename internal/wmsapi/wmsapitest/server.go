// Package wmsapitest runs an in-memory WMS backend for tests. It serves the
// same routes and envelopes as the real backend and records every request.
package wmsapitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// XLSXContentType is served by the export routes.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Record is one stored entity, as decoded JSON.
type Record = map[string]any

// Request is a recorded inbound call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type failure struct {
	method string
	path   string
	status int
	code   int
	msg    string
}

// Server is the fake backend.
type Server struct {
	*httptest.Server

	// Token, when set, must be presented as a bearer token.
	Token string
	// GeneratedNo is returned by receiptOrder/generate/no.
	GeneratedNo string

	mu       sync.Mutex
	records  map[string][]Record
	exports  map[string][]byte
	requests []Request
	failures []failure
	nextID   int64
	logger   *zap.Logger
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		GeneratedNo: "RK10280042",
		records:     map[string][]Record{},
		exports:     map[string][]byte{},
		nextID:      1000,
		logger:      zap.NewNop(),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.record, s.auth, s.injectFailure)

	api := r.Group("/api/wms/:resource")
	api.GET("/list", s.list)
	api.GET("/listNoPage", s.listNoPage)
	api.GET("/list/:orderId", s.listByOrder)
	api.GET("/boardList/:type", s.boardList)
	api.GET("/treeselect", s.treeSelect)
	api.GET("/selectList", s.list)
	api.GET("/generate/no", s.generateNo)
	api.GET("/:id", s.get)
	api.POST("", s.add)
	api.PUT("", s.update)
	api.DELETE("/:ids", s.remove)
	api.POST("/export", s.export)
	api.POST("/update/orderNum", s.updateOrderNum)
	api.POST("/:action", s.action)
	return r
}

// Seed stores records under resource and returns their ids. Records
// without an id get one assigned.
func (s *Server) Seed(resource string, records ...any) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			panic(err)
		}
		var m Record
		if err := json.Unmarshal(data, &m); err != nil {
			panic(err)
		}
		ids = append(ids, s.insertLocked(resource, m))
	}
	return ids
}

// Records returns a copy of the records stored under resource.
func (s *Server) Records(resource string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records[resource]...)
}

// SetExport sets the bytes served by resource/export.
func (s *Server) SetExport(resource string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exports[resource] = data
}

// Fail makes the next request matching method and path answer with the
// given HTTP status and envelope. A status of 200 with a code other than
// 200 mimics a rejected business rule.
func (s *Server) Fail(method, path string, status, code int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, path: path, status: status, code: code, msg: msg})
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.Query(),
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	s.mu.Unlock()

	start := time.Now()
	c.Next()
	s.logger.Debug("fake backend request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)))
}

func (s *Server) auth(c *gin.Context) {
	if s.Token == "" || c.GetHeader("Authorization") == "Bearer "+s.Token {
		c.Next()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "msg": "认证失败，无法访问系统资源"})
}

func (s *Server) injectFailure(c *gin.Context) {
	s.mu.Lock()
	for i, f := range s.failures {
		if f.method == c.Request.Method && f.path == c.Request.URL.Path {
			s.failures = append(s.failures[:i], s.failures[i+1:]...)
			s.mu.Unlock()
			c.AbortWithStatusJSON(f.status, gin.H{"code": f.code, "msg": f.msg})
			return
		}
	}
	s.mu.Unlock()
	c.Next()
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "msg": "操作成功"})
}

func okData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "msg": "操作成功", "data": data})
}

func reject(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"code": http.StatusInternalServerError, "msg": msg})
}

func (s *Server) list(c *gin.Context) {
	rows := s.filter(c.Param("resource"), c.Request.URL.Query())
	size := atoiDefault(c.Query("pageSize"), 10)
	current := atoiDefault(c.Query("current"), 1)
	total := len(rows)
	start := min((current-1)*size, total)
	end := min(start+size, total)
	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "msg": "查询成功", "total": total, "rows": rows[start:end]})
}

func (s *Server) listNoPage(c *gin.Context) {
	okData(c, s.filter(c.Param("resource"), c.Request.URL.Query()))
}

func (s *Server) listByOrder(c *gin.Context) {
	resource := c.Param("resource")
	key := strings.TrimSuffix(resource, "Detail") + "Id"
	okData(c, s.filter(resource, url.Values{key: {c.Param("orderId")}}))
}

func (s *Server) boardList(c *gin.Context) {
	switch c.Param("type") {
	case "warehouse", "area", "item":
	default:
		reject(c, "unknown board type")
		return
	}
	s.list(c)
}

func (s *Server) treeSelect(c *gin.Context) {
	rows := s.filter(c.Param("resource"), c.Request.URL.Query())
	children := map[string][]Record{}
	for _, r := range rows {
		parent := toString(r["parentId"])
		children[parent] = append(children[parent], r)
	}
	var build func(parent string) []gin.H
	build = func(parent string) []gin.H {
		var nodes []gin.H
		for _, r := range children[parent] {
			id := toString(r["id"])
			node := gin.H{"id": id, "label": r["categoryName"]}
			if parent != "" && parent != "0" {
				node["parentId"] = parent
			}
			if kids := build(id); len(kids) > 0 {
				node["children"] = kids
			}
			nodes = append(nodes, node)
		}
		return nodes
	}
	roots := append(build(""), build("0")...)
	okData(c, roots)
}

func (s *Server) generateNo(c *gin.Context) {
	okData(c, s.GeneratedNo)
}

func (s *Server) get(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, rec := s.findLocked(c.Param("resource"), c.Param("id"))
	if rec == nil {
		okData(c, nil)
		return
	}
	okData(c, rec)
}

func (s *Server) add(c *gin.Context) {
	rec, err := bindRecord(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "msg": err.Error()})
		return
	}
	delete(rec, "id")
	s.mu.Lock()
	s.insertLocked(c.Param("resource"), rec)
	s.mu.Unlock()
	ok(c)
}

func (s *Server) update(c *gin.Context) {
	rec, err := bindRecord(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "msg": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	resource := c.Param("resource")
	i, existing := s.findLocked(resource, toString(rec["id"]))
	if existing == nil {
		reject(c, "记录不存在")
		return
	}
	rec["updateTime"] = now()
	s.records[resource][i] = rec
	ok(c)
}

func (s *Server) remove(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resource := c.Param("resource")
	for _, id := range strings.Split(c.Param("ids"), ",") {
		if i, rec := s.findLocked(resource, id); rec != nil {
			s.records[resource] = append(s.records[resource][:i], s.records[resource][i+1:]...)
		}
	}
	ok(c)
}

func (s *Server) export(c *gin.Context) {
	s.mu.Lock()
	data, found := s.exports[c.Param("resource")]
	s.mu.Unlock()
	if !found {
		data = []byte("PK\x03\x04" + c.Param("resource"))
	}
	c.Data(http.StatusOK, XLSXContentType, data)
}

func (s *Server) updateOrderNum(c *gin.Context) {
	var nodes []struct {
		ID       any `json:"id"`
		OrderNum int `json:"orderNum"`
	}
	body, _ := io.ReadAll(c.Request.Body)
	if err := json.Unmarshal(body, &nodes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "msg": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range nodes {
		if _, rec := s.findLocked(c.Param("resource"), toString(n.ID)); rec != nil {
			rec["orderNum"] = n.OrderNum
		}
	}
	ok(c)
}

// action completes an order (warehousing, shipment, move, check): the order
// is stored with its status set to finished.
func (s *Server) action(c *gin.Context) {
	resource := c.Param("resource")
	switch c.Param("action") {
	case "warehousing", "shipment", "move", "check":
	default:
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "msg": "not found"})
		return
	}
	rec, err := bindRecord(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "msg": err.Error()})
		return
	}
	rec[resource+"Status"] = 1

	s.mu.Lock()
	defer s.mu.Unlock()
	if i, existing := s.findLocked(resource, toString(rec["id"])); existing != nil {
		s.records[resource][i] = rec
	} else {
		delete(rec, "id")
		s.insertLocked(resource, rec)
	}
	ok(c)
}

func (s *Server) filter(resource string, query url.Values) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []Record{}
	for _, rec := range s.records[resource] {
		if matches(rec, query) {
			rows = append(rows, rec)
		}
	}
	return rows
}

func matches(rec Record, query url.Values) bool {
	for key, values := range query {
		if key == "pageSize" || key == "current" || len(values) == 0 {
			continue
		}
		v, found := rec[key]
		if !found {
			continue
		}
		if toString(v) != values[0] {
			return false
		}
	}
	return true
}

func (s *Server) insertLocked(resource string, rec Record) string {
	id := toString(rec["id"])
	if id == "" {
		s.nextID++
		id = strconv.FormatInt(s.nextID, 10)
		rec["id"] = id
	}
	if rec["createTime"] == nil {
		rec["createTime"] = now()
	}
	s.records[resource] = append(s.records[resource], rec)
	return id
}

func (s *Server) findLocked(resource, id string) (int, Record) {
	for i, rec := range s.records[resource] {
		if toString(rec["id"]) == id {
			return i, rec
		}
	}
	return -1, nil
}

func bindRecord(c *gin.Context) (Record, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = Record{}
	}
	return rec, nil
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		data, _ := json.Marshal(x)
		return string(data)
	}
}

func atoiDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func now() string { return time.Now().Format("2006-01-02 15:04:05") }
