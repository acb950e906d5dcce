package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/sultanm/shopfront/pkg/errors"
)

// ImageUpload names one file to attach to a product.
type ImageUpload struct {
	FileName string
	Reader   io.Reader
}

// UploadImages attaches one or more image files to a product.
func (c *Client) UploadImages(ctx context.Context, productID string, uploads []ImageUpload) ([]Image, error) {
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if len(uploads) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one file is required")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, upload := range uploads {
		part, err := writer.CreateFormFile("files", upload.FileName)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build multipart form")
		}
		if _, err := io.Copy(part, upload.Reader); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "copy file into form")
		}
	}
	if err := writer.WriteField("productId", productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write product id field")
	}
	if err := writer.Close(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finalize multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/images/upload", nil), body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req)

	resp, err := c.execute(ctx, "upload_images", req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeImageEnvelope(resp)
}

// UpdateImage replaces the stored file behind an existing image id.
func (c *Client) UpdateImage(ctx context.Context, imageID string, upload ImageUpload) error {
	if imageID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image id is required")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build multipart form")
	}
	if _, err := io.Copy(part, upload.Reader); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "copy file into form")
	}
	if err := writer.Close(); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finalize multipart form")
	}

	path := fmt.Sprintf("/images/image/%s/update", url.PathEscape(imageID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.buildURL(path, nil), body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build update request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req)

	resp, err := c.execute(ctx, "update_image", req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := decodeImageEnvelope(resp); err != nil {
		return err
	}
	return nil
}

// DeleteImage removes an uploaded image.
func (c *Client) DeleteImage(ctx context.Context, imageID string) error {
	if imageID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image id is required")
	}
	path := fmt.Sprintf("/images/image/%s/delete", url.PathEscape(imageID))
	return c.call(ctx, "delete_image", http.MethodDelete, path, nil, nil, nil)
}

// ImageDownloadURL builds the absolute URL for an image's relative
// download path.
func ImageDownloadURL(assetBaseURL, downloadPath string) string {
	if downloadPath == "" {
		return ""
	}
	if strings.HasPrefix(downloadPath, "http://") || strings.HasPrefix(downloadPath, "https://") {
		return downloadPath
	}
	return strings.TrimRight(assetBaseURL, "/") + "/" + strings.TrimLeft(downloadPath, "/")
}

func decodeImageEnvelope(resp *http.Response) ([]Image, error) {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeBackend, err, "read upload response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeBackend, err, "decode upload envelope")
	}
	if !env.Success || resp.StatusCode >= 400 {
		return nil, pkgerrors.New(pkgerrors.CodeBackend, env.Message)
	}

	var images []Image
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &images); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeBackend, err, "decode uploaded images")
		}
	}
	return images, nil
}
