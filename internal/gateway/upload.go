package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadImage загружает файл изображения и возвращает его URL на сервере
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	const op = "gateway.UploadImage"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%s: failed to build multipart body: %w", op, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("%s: failed to read file: %w", op, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%s: failed to finalize multipart body: %w", op, err)
	}

	var resp struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload-image", writer.FormDataContentType(), &buf, &resp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return resp.ImageURL, nil
}
