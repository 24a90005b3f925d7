package mailer

import "context"

// SenderStub records send attempts for tests.
type SenderStub struct {
	Sent  []Message
	Calls int
	Err   error
}

func NewSenderStub() *SenderStub {
	return &SenderStub{}
}

func (s *SenderStub) Send(_ context.Context, msg Message) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, msg)
	return nil
}

func (s *SenderStub) Reset() {
	s.Sent = nil
	s.Calls = 0
	s.Err = nil
}
