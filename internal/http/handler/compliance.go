package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"complyapi/internal/compliance"
	"complyapi/internal/service"
)

// checkRequest is the JSON form of a check or classify request.
type checkRequest struct {
	Text           string   `json:"text" validate:"max=1000000"`
	GuidelineTypes []string `json:"guideline_types" validate:"omitempty,max=16,dive,max=64"`
}

type guidelineListResponse struct {
	Data []*compliance.Guideline `json:"data"`
}

type sourceResponse struct {
	URL string `json:"url" example:"https://minio.local/compliance-submissions/submissions/3f2c.pdf?X-Amz-Signature=..."`
}

// requestError is a client input problem reported as 400.
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// readSubmission accepts multipart, urlencoded or JSON bodies. An empty body is
// an empty submission, not an error.
func readSubmission(c *fiber.Ctx) (service.Submission, []string, error) {
	ct := c.Get(fiber.HeaderContentType)
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		return readMultipart(c)
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		return service.Submission{Text: c.FormValue("text")}, parseGuidelineTypes(c.FormValue("guideline_types")), nil
	case len(c.Body()) == 0:
		return service.Submission{}, nil, nil
	}

	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return service.Submission{}, nil, &requestError{code: "INVALID_BODY", message: "invalid request body"}
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return service.Submission{}, nil, &requestError{
				code:    "VALIDATION_ERROR",
				message: fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()),
			}
		}
		return service.Submission{}, nil, &requestError{code: "VALIDATION_ERROR", message: "invalid request"}
	}
	return service.Submission{Text: req.Text}, req.GuidelineTypes, nil
}

func readMultipart(c *fiber.Ctx) (service.Submission, []string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return service.Submission{}, nil, &requestError{code: "INVALID_FORM", message: "malformed multipart form"}
	}

	sub := service.Submission{Text: firstValue(form.Value["text"])}
	types := parseGuidelineTypes(firstValue(form.Value["guideline_types"]))

	if files := form.File["file"]; len(files) > 0 {
		fh := files[0]
		f, err := fh.Open()
		if err != nil {
			return service.Submission{}, nil, &requestError{code: "FILE_OPEN_ERROR", message: "cannot open uploaded file"}
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return service.Submission{}, nil, &requestError{code: "FILE_OPEN_ERROR", message: "cannot read uploaded file"}
		}
		sub.Filename = fh.Filename
		sub.ContentType = fh.Header.Get(fiber.HeaderContentType)
		sub.Data = data
	}
	return sub, types, nil
}

func firstValue(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// parseGuidelineTypes decodes a JSON array of ad types; anything else is ignored.
func parseGuidelineTypes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var types []string
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		return nil
	}
	return types
}

func writeRequestError(c *fiber.Ctx, err error) error {
	var re *requestError
	if errors.As(err, &re) {
		return writeError(c, fiber.StatusBadRequest, re.code, re.message)
	}
	return writeServiceError(c, err)
}

// CheckCompliance evaluates an advertisement against the selected guidelines.
//
// @Summary      Check advertisement compliance
// @Description  Upload a file (pdf, docx, html, txt) or send text. When both are sent the file wins.
// @Tags         compliance
// @Accept       multipart/form-data,json
// @Produce      json
// @Param        file             formData  file          false  "Advertisement file"
// @Param        text             formData  string        false  "Advertisement text"
// @Param        guideline_types  formData  string        false  "JSON array of ad types, e.g. [\"mutual_fund\"]"
// @Param        request          body      checkRequest  false  "JSON alternative to the form"
// @Success      200  {object}  model.Report
// @Failure      400  {object}  errorPayload
// @Failure      413  {object}  errorPayload
// @Failure      415  {object}  errorPayload
// @Failure      500  {object}  errorPayload
// @Router       /v1/compliance/check [post]
func CheckCompliance(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, types, err := readSubmission(c)
		if err != nil {
			return writeRequestError(c, err)
		}
		report, err := svc.Check(c.UserContext(), sub, types)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(report)
	}
}

// ClassifyText detects the advertisement type of a submission.
//
// @Summary      Classify advertisement type
// @Tags         compliance
// @Accept       multipart/form-data,json
// @Produce      json
// @Param        file     formData  file          false  "Advertisement file"
// @Param        text     formData  string        false  "Advertisement text"
// @Param        request  body      checkRequest  false  "JSON alternative to the form"
// @Success      200  {object}  model.Classification
// @Failure      400  {object}  errorPayload
// @Failure      415  {object}  errorPayload
// @Router       /v1/compliance/classify [post]
func ClassifyText(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, _, err := readSubmission(c)
		if err != nil {
			return writeRequestError(c, err)
		}
		res, err := svc.Classify(c.UserContext(), sub)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListGuidelines returns the guideline catalogue.
//
// @Summary  List guidelines
// @Tags     compliance
// @Produce  json
// @Success  200  {object}  guidelineListResponse
// @Router   /v1/compliance/guidelines [get]
func ListGuidelines(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(guidelineListResponse{Data: svc.Guidelines()})
	}
}

// ListChecks returns recorded checks, newest first.
//
// @Summary  List recorded checks
// @Tags     history
// @Produce  json
// @Param    limit   query  int  false  "Page size (max 100)"  default(10)
// @Param    offset  query  int  false  "Offset"               default(0)
// @Success  200  {object}  service.CheckListResult
// @Failure  400  {object}  errorPayload
// @Failure  501  {object}  errorPayload
// @Router   /v1/compliance/checks [get]
func ListChecks(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetCheck returns a recorded check with its full report.
//
// @Summary  Get a recorded check
// @Tags     history
// @Produce  json
// @Param    id  path  string  true  "Check ID (uuid)"
// @Success  200  {object}  model.ComplianceCheck
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Failure  501  {object}  errorPayload
// @Router   /v1/compliance/checks/{id} [get]
func GetCheck(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		check, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(check)
	}
}

// GetCheckSource returns a presigned download URL for the archived submission.
//
// @Summary  Download URL of the archived submission
// @Tags     history
// @Produce  json
// @Param    id  path  string  true  "Check ID (uuid)"
// @Success  200  {object}  sourceResponse
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /v1/compliance/checks/{id}/source [get]
func GetCheckSource(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.SourceURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sourceResponse{URL: u})
	}
}

// DeleteCheck removes a recorded check and its archived submission.
//
// @Summary  Delete a recorded check
// @Tags     history
// @Param    id  path  string  true  "Check ID (uuid)"
// @Success  204
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /v1/compliance/checks/{id} [delete]
func DeleteCheck(svc service.ComplianceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
