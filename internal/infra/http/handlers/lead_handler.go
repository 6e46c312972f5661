package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/xavierca1/lead-engine/internal/entity"
	"github.com/xavierca1/lead-engine/internal/infra/http/middleware"
	"github.com/xavierca1/lead-engine/internal/usecase"
)

// LeadIngestor é o contrato do caminho síncrono de ingestão.
type LeadIngestor interface {
	Execute(ctx context.Context, raw entity.RawLead) (*usecase.IngestLeadOutput, error)
}

type LeadHandler struct {
	ingestor    LeadIngestor
	rateLimiter *RateLimiter
}

func NewLeadHandler(ingestor LeadIngestor) *LeadHandler {
	return &LeadHandler{
		ingestor:    ingestor,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

type CaptureLeadRequest struct {
	Source   string   `json:"source"`
	SourceID string   `json:"source_id,omitempty"`
	Name     string   `json:"name,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Username string   `json:"username,omitempty"`
	Bio      string   `json:"bio,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Messages []string `json:"messages,omitempty"`
	Comments []string `json:"comments,omitempty"`
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	LeadID  int64  `json:"lead_id,omitempty"`
	Score   int    `json:"score,omitempty"`
	Tier    string `json:"tier,omitempty"`
	Created bool   `json:"created"`
	Message string `json:"message,omitempty"`
}

func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, CaptureLeadResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req CaptureLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	if req.Source == "" {
		writeJSON(w, http.StatusBadRequest, CaptureLeadResponse{
			Success: false,
			Message: "Source is required",
		})
		return
	}

	raw := entity.RawLead{
		Source:   req.Source,
		SourceID: req.SourceID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Username: req.Username,
		Bio:      req.Bio,
		Notes:    req.Notes,
		Messages: req.Messages,
		Comments: req.Comments,
	}

	output, err := h.ingestor.Execute(ctx, raw)
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to capture lead"
		if usecase.IsDomainError(err) {
			status = http.StatusBadRequest
			message = err.Error()
		}
		writeJSON(w, status, CaptureLeadResponse{
			Success: false,
			Message: message,
		})
		return
	}

	outcome := "merged"
	if output.Created {
		outcome = "created"
	}
	middleware.RecordLeadIngested(raw.Source, outcome)

	writeJSON(w, http.StatusOK, CaptureLeadResponse{
		Success: true,
		LeadID:  output.Lead.ID,
		Score:   output.Lead.Score,
		Tier:    output.Lead.Tier,
		Created: output.Created,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
