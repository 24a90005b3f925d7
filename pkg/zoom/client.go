package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aharkous/portfolio-api/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBaseURL  = "https://api.zoom.us/v2"
	defaultTokenURL = "https://zoom.us/oauth/token"
)

// Meeting is a provisioned Zoom meeting.
type Meeting struct {
	JoinURL  string
	Password string
}

// MeetingRequest describes the meeting to create.
type MeetingRequest struct {
	Topic           string
	StartTime       time.Time
	DurationMinutes int
}

type Client interface {
	CreateMeeting(ctx context.Context, req MeetingRequest) (*Meeting, error)
}

type ClientImpl struct {
	cfg        config.Zoom
	httpClient *http.Client

	// Overridable in tests.
	baseURL  string
	tokenURL string
}

func NewClient(cfg config.Zoom) *ClientImpl {
	return &ClientImpl{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		tokenURL:   defaultTokenURL,
	}
}

// PersonalMeetingURL builds the static join link for a personal meeting room,
// used as the fallback when meeting creation fails.
func PersonalMeetingURL(meetingId string) string {
	return "https://zoom.us/j/" + meetingId
}

// getAccessToken obtains a server-to-server OAuth token using the
// account_credentials grant.
func (c *ClientImpl) getAccessToken(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s?grant_type=account_credentials&account_id=%s", c.tokenURL, c.cfg.AccountId)
	req, err := http.NewRequestWithContext(ctx, "POST", url, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return "", err
	}
	req.SetBasicAuth(c.cfg.ClientId, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("failed to get Zoom token: status %d", resp.StatusCode)
		log.Error(err)
		return "", err
	}

	var response struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return "", err
	}
	if response.AccessToken == "" {
		return "", fmt.Errorf("no access token received from Zoom API")
	}

	return response.AccessToken, nil
}

// CreateMeeting provisions a scheduled meeting on the account owner's user.
func (c *ClientImpl) CreateMeeting(ctx context.Context, meetingReq MeetingRequest) (*Meeting, error) {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Topic     string `json:"topic"`
		Type      int    `json:"type"`
		StartTime string `json:"start_time"`
		Duration  int    `json:"duration"`
		Timezone  string `json:"timezone"`
		Settings  struct {
			HostVideo        bool   `json:"host_video"`
			ParticipantVideo bool   `json:"participant_video"`
			JoinBeforeHost   bool   `json:"join_before_host"`
			MuteUponEntry    bool   `json:"mute_upon_entry"`
			AutoRecording    string `json:"auto_recording"`
			WaitingRoom      bool   `json:"waiting_room"`
		} `json:"settings"`
	}{
		Topic:     meetingReq.Topic,
		Type:      2, // scheduled meeting
		StartTime: meetingReq.StartTime.UTC().Format(time.RFC3339),
		Duration:  meetingReq.DurationMinutes,
		Timezone:  "UTC",
	}
	payload.Settings.HostVideo = true
	payload.Settings.ParticipantVideo = true
	payload.Settings.JoinBeforeHost = true
	payload.Settings.AutoRecording = "none"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		err := fmt.Errorf("failed to create Zoom meeting: status %d", resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var response struct {
		JoinURL  string `json:"join_url"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}

	log.Debugf("Created Zoom meeting: %s", response.JoinURL)
	return &Meeting{JoinURL: response.JoinURL, Password: response.Password}, nil
}
