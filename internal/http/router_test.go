package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/storefront/internal/entities"
	"github.com/mrlokans/storefront/internal/exporters"
	"github.com/mrlokans/storefront/internal/importers"
	"github.com/mrlokans/storefront/internal/tasks"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeImporter struct {
	entity  importers.EntityType
	body    string
	summary importers.Summary
	err     error
}

func (f *fakeImporter) ImportFile(_ context.Context, entity importers.EntityType, r io.Reader) (importers.Summary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return importers.Summary{}, err
	}
	f.entity = entity
	f.body = string(data)
	return f.summary, f.err
}

type fakeQueue struct {
	enqueued []tasks.ImportDirectoryTask
	status   backlite.TaskStatus
	err      error
}

func (f *fakeQueue) EnqueueImport(task tasks.ImportDirectoryTask) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.enqueued = append(f.enqueued, task)
	return "task-42", nil
}

func (f *fakeQueue) Status(context.Context, string) (backlite.TaskStatus, error) {
	return f.status, f.err
}

type fakeExporter struct {
	status entities.OrderStatus
	err    error
}

func (f *fakeExporter) Export(_ context.Context, w io.Writer, status entities.OrderStatus) (exporters.ExportResult, error) {
	f.status = status
	if f.err != nil {
		return exporters.ExportResult{}, f.err
	}
	_, err := io.WriteString(w, "Order Number\n#1001\n")
	return exporters.ExportResult{OrdersExported: 1}, err
}

var errBoom = errors.New("boom")

func newTestRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(cfg)
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func uploadRequest(t *testing.T, path, field, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "upload.csv")
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
