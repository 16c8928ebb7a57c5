package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.assemblyai.com"

// AssemblyAI talks to the AssemblyAI v2 REST API.
type AssemblyAI struct {
	// BaseURL and HTTPClient are overridable for tests.
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

func NewAssemblyAI(apiKey string) *AssemblyAI {
	return &AssemblyAI{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
	}
}

type uploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type transcriptRequest struct {
	AudioURL string `json:"audio_url"`
}

type transcriptResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

func (a *AssemblyAI) UploadAudio(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/v2/upload", bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", a.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var out uploadResponse
	if err := a.do(req, &out); err != nil {
		return "", err
	}
	return out.UploadURL, nil
}

func (a *AssemblyAI) SubmitJob(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(transcriptRequest{AudioURL: audioURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/v2/transcript", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var out transcriptResponse
	if err := a.do(req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (a *AssemblyAI) JobStatus(ctx context.Context, jobID string) (Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"/v2/transcript/"+jobID, nil)
	if err != nil {
		return Job{}, err
	}
	req.Header.Set("Authorization", a.apiKey)

	var out transcriptResponse
	if err := a.do(req, &out); err != nil {
		return Job{}, err
	}
	return Job{ID: out.ID, Status: out.Status, Text: out.Text, Error: out.Error}, nil
}

func (a *AssemblyAI) do(req *http.Request, out any) error {
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	const maxBody = 1 << 20
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return json.Unmarshal(body, out)
}
