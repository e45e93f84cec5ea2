package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/service"
)

type stubStorage struct {
	objectName string
}

func (s *stubStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	s.objectName = objectName
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	return "https://cdn.example.com/" + bucket + "/" + objectName, nil
}

func multipartImage(t *testing.T, fieldName, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadHandlerMissingFile(t *testing.T) {
	e := echo.New()
	uploads := service.NewUploadService(&stubStorage{}, service.UploadServiceConfig{Bucket: "trails-uploads"})
	handler := &UploadHandler{uploads: uploads}

	body, contentType := multipartImage(t, "attachment", "a.jpg", "image/jpeg", "jpegdata")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := handler.upload(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file field, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no file provided") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUploadHandlerSuccess(t *testing.T) {
	e := echo.New()
	storage := &stubStorage{}
	uploads := service.NewUploadService(storage, service.UploadServiceConfig{Bucket: "trails-uploads"})
	handler := &UploadHandler{uploads: uploads}

	body, contentType := multipartImage(t, "file", "photo.png", "image/png", "pngdata")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := handler.upload(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasSuffix(payload.URL, "/"+storage.objectName) {
		t.Fatalf("expected URL for stored object, got %q", payload.URL)
	}
	if !strings.HasPrefix(storage.objectName, "images/") || !strings.HasSuffix(storage.objectName, ".png") {
		t.Fatalf("unexpected object key %q", storage.objectName)
	}
}

func TestUploadHandlerUnsupportedType(t *testing.T) {
	e := echo.New()
	uploads := service.NewUploadService(&stubStorage{}, service.UploadServiceConfig{Bucket: "trails-uploads"})
	handler := &UploadHandler{uploads: uploads}

	body, contentType := multipartImage(t, "file", "doc.pdf", "application/pdf", "%PDF-1.4")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	if err := handler.upload(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
