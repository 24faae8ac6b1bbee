package backendtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusReply is one scripted answer of the /status endpoint
type StatusReply struct {
	Messages   []string
	InProgress bool
	Code       int           // defaults to 200
	Raw        string        // sent verbatim instead of the JSON document when set
	Delay      time.Duration // wait before answering
}

// Submission is one request received on /download
type Submission struct {
	Body        string
	Form        url.Values
	ContentType string
}

// Server is a fake download backend
type Server struct {
	srv *httptest.Server

	mu          sync.Mutex
	startCode   int
	startBody   any
	startRaw    string
	statuses    []StatusReply
	statusCalls int
	submissions []Submission
	history     []string
	historyCode int
	ffmpegOK    bool
	ffmpegCode  int
}

// NewServer starts a fake backend that accepts every job and reports it finished
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		startCode:   http.StatusOK,
		startBody:   gin.H{},
		history:     []string{},
		historyCode: http.StatusOK,
		ffmpegCode:  http.StatusOK,
	}

	router := gin.New()
	router.POST("/download", s.handleDownload)
	router.GET("/status", s.handleStatus)
	router.GET("/history", s.handleHistory)
	router.GET("/api/verify-ffmpeg", s.handleVerifyFFmpeg)

	s.srv = httptest.NewServer(router)
	return s
}

// URL returns the base URL of the server
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down
func (s *Server) Close() {
	s.srv.Close()
}

// RejectJobs makes /download answer with code and {"error": message}.
// An empty message sends {} so clients fall back to their own text.
func (s *Server) RejectJobs(code int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startCode = code
	s.startRaw = ""
	if message == "" {
		s.startBody = gin.H{}
	} else {
		s.startBody = gin.H{"error": message}
	}
}

// SetStartRaw makes /download answer with code and a verbatim body
func (s *Server) SetStartRaw(code int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startCode = code
	s.startRaw = body
}

// QueueStatus appends replies to the /status script. The last reply repeats
// once the script is exhausted.
func (s *Server) QueueStatus(replies ...StatusReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, replies...)
}

// SetHistory sets the titles returned by /history
func (s *Server) SetHistory(code int, titles []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyCode = code
	s.history = titles
}

// SetFFmpeg sets the answer of /api/verify-ffmpeg
func (s *Server) SetFFmpeg(code int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ffmpegCode = code
	s.ffmpegOK = ok
}

// Submissions returns the jobs received so far
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

// StatusCalls returns how many times /status was requested
func (s *Server) StatusCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusCalls
}

func (s *Server) handleDownload(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	form, _ := url.ParseQuery(string(raw))

	s.mu.Lock()
	s.submissions = append(s.submissions, Submission{
		Body:        string(raw),
		Form:        form,
		ContentType: c.ContentType(),
	})
	code, body, rawReply := s.startCode, s.startBody, s.startRaw
	s.mu.Unlock()

	if rawReply != "" {
		c.Data(code, "text/html; charset=utf-8", []byte(rawReply))
		return
	}
	c.JSON(code, body)
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.Lock()
	s.statusCalls++
	reply := StatusReply{Messages: []string{}}
	if len(s.statuses) > 0 {
		reply = s.statuses[0]
		if len(s.statuses) > 1 {
			s.statuses = s.statuses[1:]
		}
	}
	s.mu.Unlock()

	if reply.Delay > 0 {
		select {
		case <-time.After(reply.Delay):
		case <-c.Request.Context().Done():
			return
		}
	}

	code := reply.Code
	if code == 0 {
		code = http.StatusOK
	}
	if reply.Raw != "" {
		c.Data(code, "application/json", []byte(reply.Raw))
		return
	}

	messages := reply.Messages
	if messages == nil {
		messages = []string{}
	}
	c.JSON(code, gin.H{"messages": messages, "in_progress": reply.InProgress})
}

func (s *Server) handleHistory(c *gin.Context) {
	s.mu.Lock()
	code, titles := s.historyCode, s.history
	s.mu.Unlock()

	if titles == nil {
		titles = []string{}
	}
	c.JSON(code, gin.H{"history": titles})
}

func (s *Server) handleVerifyFFmpeg(c *gin.Context) {
	s.mu.Lock()
	code, ok := s.ffmpegCode, s.ffmpegOK
	s.mu.Unlock()

	c.JSON(code, gin.H{"ok": ok})
}
