package applyform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Client submits applications to the intake endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the given server base URL. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Submit encodes the fields as multipart form data and posts them to /apply.
// The returned error's message is suitable for showing to the user directly:
// the server's message when it sent one, GenericSubmitError otherwise.
func (c *Client) Submit(ctx context.Context, f Fields) error {
	body, contentType, err := encodeMultipart(f)
	if err != nil {
		return errors.New(GenericSubmitError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/apply", body)
	if err != nil {
		return errors.New(GenericSubmitError)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.New(GenericSubmitError)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Message == "" {
		return errors.New(GenericSubmitError)
	}
	return errors.New(payload.Message)
}

// encodeMultipart writes every non-empty field plus the certificate file into
// a multipart body, mirroring the field names the intake handler reads.
func encodeMultipart(f Fields) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"firstName":    f.FirstName,
		"middleName":   f.MiddleName,
		"surname":      f.Surname,
		"dateOfBirth":  f.DateOfBirth,
		"gender":       f.Gender,
		"email":        f.Email,
		"phoneNumber":  f.PhoneNumber,
		"address":      f.Address,
		"referralCode": f.ReferralCode,
		"profession":   f.Profession,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("encoding field %s: %w", name, err)
		}
	}

	if len(f.PccFile) > 0 {
		part, err := mw.CreateFormFile("pccFile", f.PccFileName)
		if err != nil {
			return nil, "", fmt.Errorf("encoding certificate: %w", err)
		}
		if _, err := part.Write(f.PccFile); err != nil {
			return nil, "", fmt.Errorf("encoding certificate: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing form body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
