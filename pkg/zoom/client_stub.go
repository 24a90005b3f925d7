package zoom

import "context"

// ClientStub records meeting creation calls for orchestration tests.
type ClientStub struct {
	Meeting *Meeting
	Err     error

	CreateCalls int
	Requests    []MeetingRequest
}

func NewClientStub() *ClientStub {
	return &ClientStub{
		Meeting: &Meeting{JoinURL: "https://zoom.us/j/123456789", Password: "stub-pass"},
	}
}

func (s *ClientStub) CreateMeeting(_ context.Context, req MeetingRequest) (*Meeting, error) {
	s.CreateCalls++
	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Meeting, nil
}

func (s *ClientStub) Reset() {
	*s = ClientStub{
		Meeting: &Meeting{JoinURL: "https://zoom.us/j/123456789", Password: "stub-pass"},
	}
}
