package pkg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
}

type CloudinaryClient struct {
	cfg  CloudinaryConfig
	http *http.Client
}

type UploadResult struct {
	PublicID     string `json:"public_id"`
	URL          string `json:"secure_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

func NewCloudinaryClient(cfg CloudinaryConfig) *CloudinaryClient {
	return &CloudinaryClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends one file to the unsigned image upload endpoint and returns
// its public id and URLs.
func (c *CloudinaryClient) Upload(ctx context.Context, filename string, file io.Reader, folder string) (*UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(fw, file); err != nil {
		return nil, err
	}
	if err = mw.WriteField("upload_preset", c.cfg.UploadPreset); err != nil {
		return nil, err
	}
	if err = mw.WriteField("folder", folder); err != nil {
		return nil, err
	}
	if err = mw.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error.Message != "" {
			return nil, fmt.Errorf("cloudinary upload: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("cloudinary upload: status %d", resp.StatusCode)
	}

	var out struct {
		PublicID  string `json:"public_id"`
		SecureURL string `json:"secure_url"`
		Eager     []struct {
			SecureURL string `json:"secure_url"`
		} `json:"eager"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	res := &UploadResult{PublicID: out.PublicID, URL: out.SecureURL, ThumbnailURL: out.SecureURL}
	if len(out.Eager) > 0 && out.Eager[0].SecureURL != "" {
		res.ThumbnailURL = out.Eager[0].SecureURL
	}
	return res, nil
}
