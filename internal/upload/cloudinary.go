package upload

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.cloudinary.com"

// ErrNotConfigured - Cloudinary 환경 변수가 하나라도 비어 있으면 업로드할 수 없다.
var ErrNotConfigured = errors.New("cloudinary 설정이 없습니다")

type Client struct {
	CloudName  string
	APIKey     string
	APISecret  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(cloudName, apiKey, apiSecret string) *Client {
	return &Client{
		CloudName:  cloudName,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// Sign - signed upload 서명. sha256("timestamp=<unix초><secret>")의 16진 문자열.
func (c *Client) Sign(timestamp int64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("timestamp=%d%s", timestamp, c.APISecret)))
	return hex.EncodeToString(sum[:])
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Cloudinary 응답에서 사용하는 필드만 읽는다.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload - 서명된 업로드 요청을 보내고 공개 URL을 돌려준다. 재시도는 하지 않는다.
func (c *Client) Upload(ctx context.Context, image []byte, contentType string) (*UploadResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	timestamp := time.Now().Unix()
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	_ = form.WriteField("file", dataURI)
	_ = form.WriteField("timestamp", strconv.FormatInt(timestamp, 10))
	_ = form.WriteField("api_key", c.APIKey)
	_ = form.WriteField("signature", c.Sign(timestamp))
	if err := form.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.BaseURL, c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cloudinary 업로드 실패: status=%d body=%s", resp.StatusCode, raw)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return &UploadResult{URL: parsed.SecureURL, PublicID: parsed.PublicID}, nil
}
