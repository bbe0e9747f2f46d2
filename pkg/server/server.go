package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordglob/internal/logger"
	"github.com/bastiangx/wordglob/pkg/dictionary"
	"github.com/bastiangx/wordglob/pkg/query"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server answers lookup requests over a msgpack stream
type Server struct {
	dict         *dictionary.Dictionary
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w.
// Pass os.Stdin and os.Stdout for IPC.
func NewServer(dict *dictionary.Dictionary, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict:    dict,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start sends the ready message and serves requests until the input ends.
// A clean EOF returns nil; an undecodable request is answered with an error and returned.
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server")
	if err := s.send(StatusMessage{Status: "ready", Words: s.dict.Len()}); err != nil {
		return err
	}

	for {
		var request QueryRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}

		if err := s.handleQuery(request); err != nil {
			return err
		}
	}
}

// handleQuery runs one lookup and writes its response
func (s *Server) handleQuery(request QueryRequest) error {
	s.requestCount++
	s.log.Debug("Processing request", "id", request.ID, "pattern", request.Pattern)

	start := time.Now()
	res := query.Run(s.dict, query.New(request.Pattern, request.Blacklist, request.Yellow))
	elapsed := time.Since(start)

	s.log.Debugf("Took [ %v ] for pattern '%s'", elapsed, request.Pattern)

	return s.send(QueryResponse{
		ID:         request.ID,
		All:        res.All,
		NoRepeat:   res.NoRepeat,
		WithRepeat: res.WithRepeat,
		Count:      res.Count(),
		TimeTaken:  elapsed.Microseconds(),
	})
}

// send encodes a single message
func (s *Server) send(message any) error {
	if err := s.encoder.Encode(message); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// sendError sends an error message, logging if even that fails
func (s *Server) sendError(id, message string, code int) {
	if err := s.send(QueryError{ID: id, Error: message, Code: code}); err != nil {
		s.log.Errorf("Failed to send error response: %v", err)
	}
}
