package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"complyapi/internal/compliance"
	"complyapi/internal/model"
	"complyapi/internal/service"
	serviceMocks "complyapi/internal/service/mocks"
)

func multipartBody(t *testing.T, fields map[string]string, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestCheckCompliance(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Post("/v1/compliance/check", CheckCompliance(mockSvc))

	report := &model.Report{OverallAccuracyPercentage: 82.5, OverallStatus: model.StatusWarning}

	t.Run("multipart text", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{
			"text":            "Invest in XYZ Fund",
			"guideline_types": `["mutual_fund","ipo"]`,
		}, "", nil)
		mockSvc.On("Check", mock.Anything, service.Submission{Text: "Invest in XYZ Fund"}, []string{"mutual_fund", "ipo"}).
			Return(report, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got model.Report
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, 82.5, got.OverallAccuracyPercentage)
		assert.Equal(t, model.StatusWarning, got.OverallStatus)
		mockSvc.AssertExpectations(t)
	})

	t.Run("multipart file wins and bad guideline types are ignored", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{
			"text":            "ignored",
			"guideline_types": "mutual_fund",
		}, "ad.txt", []byte("Mutual funds are subject to market risks"))
		mockSvc.On("Check", mock.Anything, mock.MatchedBy(func(sub service.Submission) bool {
			return sub.Filename == "ad.txt" && string(sub.Data) == "Mutual funds are subject to market risks"
		}), []string(nil)).Return(report, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("json body", func(t *testing.T) {
		mockSvc.On("Check", mock.Anything, service.Submission{Text: "Buy now"}, []string{"trading"}).
			Return(report, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check",
			strings.NewReader(`{"text":"Buy now","guideline_types":["trading"]}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("urlencoded form", func(t *testing.T) {
		mockSvc.On("Check", mock.Anything, service.Submission{Text: "Open account"}, []string{"investing"}).
			Return(report, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check",
			strings.NewReader(`text=Open+account&guideline_types=%5B%22investing%22%5D`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty body is an empty submission", func(t *testing.T) {
		mockSvc.On("Check", mock.Anything, service.Submission{}, []string(nil)).
			Return(&model.Report{OverallAccuracyPercentage: 100, OverallStatus: model.StatusPass}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", strings.NewReader(`{"text":`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		types := make([]string, 17)
		for i := range types {
			types[i] = "ipo"
		}
		raw, _ := json.Marshal(checkRequest{Text: "x", GuidelineTypes: types})

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", bytes.NewReader(raw))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		assert.Equal(t, "guideline_types failed max validation", res.Error.Message)
	})

	serviceErrors := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unsupported format", service.ErrUnsupportedFormat, http.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT"},
		{"too large", service.ErrContentTooLarge, http.StatusRequestEntityTooLarge, "CONTENT_TOO_LARGE"},
		{"internal", errors.New("model exploded"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range serviceErrors {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, nil, "logo.png", []byte{1, 2, 3})
			mockSvc.On("Check", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", body)
			req.Header.Set("Content-Type", ct)
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

// badPageTreePDF is a well-formed PDF whose page tree claims a negative count.
func badPageTreePDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	off1 := buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	off2 := buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Count -1 /Kids [] >>\nendobj\n")
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 3\n0000000000 65535 f \n%010d 00000 n \n%010d 00000 n \n", off1, off2)
	fmt.Fprintf(&buf, "trailer\n<< /Size 3 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func TestCheckCompliance_BrokenPDFStillReports(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(recover.New())
	svc := service.NewComplianceService(service.Dependencies{}, service.Options{
		ChunkSize: 400, ChunkOverlap: 80, ClassifyChunkSize: 200, MaxUploadBytes: 1 << 20, Workers: 2,
	})
	app.Post("/v1/compliance/check", CheckCompliance(svc))

	body, ct := multipartBody(t, nil, "ad.pdf", badPageTreePDF())
	req := httptest.NewRequest(http.MethodPost, "/v1/compliance/check", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var report model.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	require.Len(t, report.Evaluations, 1)
	assert.Equal(t, "asci", report.Evaluations[0].Code)
	assert.Empty(t, report.ID)
}

func TestClassifyText(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Post("/v1/compliance/classify", ClassifyText(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Classify", mock.Anything, service.Submission{Text: "IPO opens Monday"}).
			Return(&model.Classification{DetectedType: model.AdTypeIPO}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/classify", strings.NewReader(`{"text":"IPO opens Monday"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got model.Classification
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, model.AdTypeIPO, got.DetectedType)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Classify", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/compliance/classify", strings.NewReader(`{"text":"x"}`))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListGuidelines(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Get("/v1/compliance/guidelines", ListGuidelines(mockSvc))

	mockSvc.On("Guidelines").Return(compliance.All()).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/compliance/guidelines", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Data []struct {
			Code       string `json:"code"`
			Categories []struct {
				Fields []map[string]any `json:"fields"`
			} `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Data, 3)
	assert.Equal(t, "asci", got.Data[0].Code)
	assert.Contains(t, got.Data[0].Categories[0].Fields[0], "pass_guidance")
	mockSvc.AssertExpectations(t)
}

func TestListChecks(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Get("/v1/compliance/checks", ListChecks(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.CheckListResult{
			Items: []model.ComplianceCheck{{ID: uuid.New().String(), SourceName: "ad.pdf"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 5, 10).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks?limit=5&offset=10", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.CheckListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks?offset=x", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("history disabled", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, service.ErrHistoryDisabled).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
		assert.Equal(t, "HISTORY_DISABLED", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetCheck(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Get("/v1/compliance/checks/:id", GetCheck(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.ComplianceCheck{
			ID:     id,
			Report: json.RawMessage(`{"overall_status":"Pass"}`),
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result map[string]any
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result["id"])
		assert.Equal(t, map[string]any{"overall_status": "Pass"}, result["report"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks/invalid-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetCheckSource(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Get("/v1/compliance/checks/:id/source", GetCheckSource(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("SourceURL", mock.Anything, id).Return("https://minio.local/x", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks/"+id+"/source", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got sourceResponse
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "https://minio.local/x", got.URL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no source", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("SourceURL", mock.Anything, id).Return("", service.ErrNoSource).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/compliance/checks/"+id+"/source", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "SOURCE_NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteCheck(t *testing.T) {
	mockSvc := new(serviceMocks.MockComplianceService)
	app := fiber.New()
	app.Delete("/v1/compliance/checks/:id", DeleteCheck(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/compliance/checks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/compliance/checks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/compliance/checks/nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete storage: s3 down")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/compliance/checks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
