package gitea

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/google/uuid"
)

// uploadFieldName is the form field Gitea expects for attachment uploads.
const uploadFieldName = "attachment"

// Upload executes the endpoint as a multipart/form-data request carrying a
// single file part and decodes the JSON response into result. Request
// construction mirrors Do except for the body and Content-Type; the Accept
// header and auth header are unchanged.
func (c *Client) Upload(ctx context.Context, ep Endpoint, fileData []byte, fileName, mimeType string, result any) error {
	reqURL, err := c.requestURL(ep)
	if err != nil {
		return err
	}

	boundary := uuid.NewString()
	body, err := buildMultipartBody(boundary, fileData, fileName, mimeType)
	if err != nil {
		return &APIError{Kind: KindInvalidRequestTarget, cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, reqURL, bytes.NewReader(body))
	if err != nil {
		return &APIError{Kind: KindInvalidRequestTarget, cause: err}
	}

	req.Header.Set("Content-Type", fmt.Sprintf("multipart/form-data; boundary=%s", boundary))
	req.Header.Set("Accept", "application/json")
	c.setAuthHeader(req)

	return c.execute(req, result)
}

// UploadNoContent executes a multipart upload and validates the status
// code only.
func (c *Client) UploadNoContent(ctx context.Context, ep Endpoint, fileData []byte, fileName, mimeType string) error {
	return c.Upload(ctx, ep, fileData, fileName, mimeType, nil)
}

func buildMultipartBody(boundary string, fileData []byte, fileName, mimeType string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.SetBoundary(boundary); err != nil {
		return nil, err
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadFieldName, fileName))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(fileData); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
