package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	apperrors "ecobin-portal/internal/errors"
)

// HTTPService posts the image as multipart field "file" to the classifier.
type HTTPService struct {
	url    string
	client *http.Client
}

// NewHTTPService creates a classifier client for url.
func NewHTTPService(url string, client *http.Client) *HTTPService {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPService{url: url, client: client}
}

type classifyResponse struct {
	Classification string `json:"classification"`
}

// Classify uploads image and returns the classifier's label.
func (s *HTTPService) Classify(ctx context.Context, filename, contentType string, image io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &apperrors.BackendError{Op: "classify", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &apperrors.BackendError{Op: "classify", StatusCode: resp.StatusCode}
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &apperrors.BackendError{Op: "classify", StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return out.Classification, nil
}
